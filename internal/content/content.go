// Package content renders a fact record into the three fixed content groups
// consumed by downstream document renderers. Rendering is straight string
// interpolation: every record field already carries a default, so every
// record, however degenerate, produces complete output.
package content

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/gopromo/internal/facts"
)

// Group keys are the wire contract for any downstream renderer.
const (
	KeyPromotionTitle       = "promotion_title"
	KeyPromotionDescription = "promotion_description"
	KeyInfoBannerLive       = "info_banner_live"
	KeyInfoBannerCompleted  = "info_banner_completed"
	KeyInfoPopupTerms       = "info_popup_terms"

	KeyTaskTitle        = "task_title"
	KeyTaskDescription  = "task_description"
	KeyTaskInfoMessage  = "task_info_message"
	KeyWarningMessage   = "warning_message"
	KeyActionButtonPre  = "action_button_pre"
	KeyActionButtonPost = "action_button_post"

	KeyPrizeContent          = "prize_content"
	KeyRewardCreditedContent = "reward_credited_content"
)

// Sections bundles the three content groups. Each map always carries every
// key of its group with a non-empty value.
type Sections struct {
	Multi  map[string]string
	Task   map[string]string
	Reward map[string]string
}

// Render maps a fact record into the three content groups.
func Render(rec facts.Record) Sections {
	return Sections{
		Multi: map[string]string{
			KeyPromotionTitle: rec.Title,
			KeyPromotionDescription: fmt.Sprintf(
				"Win prizes by completing weekly challenges. %s Up to %s tickets per week.",
				rec.Mechanic, rec.EntryCapPerWeek),
			KeyInfoBannerLive: fmt.Sprintf(
				"Earn tickets to the %s\nGet 1 ticket each time you complete the weekly challenge on %s\nPlayers could win cash or Casino Bonuses",
				rec.Title, rec.Featured),
			KeyInfoBannerCompleted: "Any completed Challenge will appear here. Click on the 'Live' tab to view any currently available Challenge.",
			KeyInfoPopupTerms:      renderTerms(rec),
		},
		Task: map[string]string{
			KeyTaskTitle: rec.Title,
			KeyTaskDescription: fmt.Sprintf(
				"%s You can earn up to %s tickets per week.", rec.Mechanic, rec.EntryCapPerWeek),
			KeyTaskInfoMessage: "Your progress will be tracked automatically after opt-in.",
			KeyWarningMessage: fmt.Sprintf(
				"Only play on %s will count towards your progress.", rec.Featured),
			KeyActionButtonPre:  "Opt-in",
			KeyActionButtonPost: "Play",
		},
		Reward: map[string]string{
			KeyPrizeContent:          fmt.Sprintf("Entry to the %s", rec.Title),
			KeyRewardCreditedContent: "Ticket credited",
		},
	}
}

// renderTerms builds the long-form terms and conditions block.
func renderTerms(rec facts.Record) string {
	var lines []string
	lines = append(lines, "**Terms & Conditions**\n")
	lines = append(lines, "**What is being offered**")
	lines = append(lines, fmt.Sprintf(
		"Players who complete a Casino challenge during the offer period can earn entries to the %s and be in with a chance to win cash or Casino Bonus prizes.",
		rec.Title))
	lines = append(lines, "\n**When is the offer being conducted**")
	if rec.StartDate != "" || rec.EndDate != "" {
		start := rec.StartDate
		if start == "" {
			start = "the start date"
		}
		end := rec.EndDate
		if end == "" {
			end = "the end date"
		}
		lines = append(lines, fmt.Sprintf("This offer runs from %s until %s.", start, end))
	}
	lines = append(lines, "Weekly periods:")
	lines = append(lines, renderWeeklyWindows(rec.WeeklyWindows))
	lines = append(lines, "\n**Who is eligible to take part and how can you qualify**")
	lines = append(lines, "Offer is available to real-money Casino players in eligible markets.")
	lines = append(lines, "Players must opt in via the Challenges Window. Progress only counts after opt-in.")
	lines = append(lines, fmt.Sprintf("To qualify, %s", rec.Mechanic))
	lines = append(lines, fmt.Sprintf("Players can complete the challenge up to **%s times per weekly period**.", rec.EntryCapPerWeek))
	lines = append(lines, "\n**Wagering requirements and limitations by type of game**")
	lines = append(lines, fmt.Sprintf("Only play on **%s** will count towards progress. No minimum bet requirement applies unless stated.", rec.Featured))
	lines = append(lines, "\n**Claiming and redeeming the offer**")
	lines = append(lines, "Tickets are credited automatically upon each challenge completion and entered into the relevant Prize Draw.")
	lines = append(lines, "Prizes will be awarded as follows:")
	lines = append(lines, renderPrizeBlock(rec.Prizes))
	lines = append(lines, "\n**What else do you need to know**")
	lines = append(lines, "Cash prizes carry no wagering requirements and cannot be assigned or transferred.")
	lines = append(lines, "Casino Bonuses are valid for 72 hours unless otherwise stated and may require acceptance in certain markets.")
	lines = append(lines, "Game availability varies by device and location.")
	lines = append(lines, "See here for general promotional Terms & Conditions.")
	return strings.Join(lines, "\n")
}

// renderPrizeBlock lists prize tiers as bullet lines, or a canned default
// block when no prizes were extracted.
func renderPrizeBlock(prizes []facts.Prize) string {
	if len(prizes) == 0 {
		return "- $1,000 Cash – 1\n- $300 Casino Bonus – 10\n- $80 Casino Bonus – 50"
	}
	lines := make([]string, 0, len(prizes))
	for _, p := range prizes {
		name := strings.TrimSpace(strings.ReplaceAll(p.Prize, "  ", " "))
		lines = append(lines, fmt.Sprintf("- %s – %d", name, p.Quantity))
	}
	return strings.Join(lines, "\n")
}

func renderWeeklyWindows(windows []string) string {
	if len(windows) == 0 {
		return "- See offer page for weekly windows."
	}
	lines := make([]string, 0, len(windows))
	for _, w := range windows {
		lines = append(lines, "- "+w)
	}
	return strings.Join(lines, "\n")
}
