package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/SigilForge_Go/internal/domain"
)

// Embed colors
const (
	ColorSuccess   = 0x2ecc71
	ColorFailure   = 0xe67e22
	ColorDowngrade = 0xe74c3c
	ColorProtected = 0x3498db
	ColorMaxLevel  = 0xf1c40f
	ColorInfo      = 0x95a5a6
)

const glowMark = "✨"

var titleCaser = cases.Title(language.English)

// titleCase capitalizes each word of s
func titleCase(s string) string {
	return titleCaser.String(s)
}

// weaponLabel renders a weapon as "+12 Brandish ✨"
func weaponLabel(w domain.Weapon) string {
	label := fmt.Sprintf("+%d %s", w.UpgradeLevel, titleCase(w.Name))
	if w.Glow {
		label += " " + glowMark
	}
	return label
}

// messagePrefix is the fixed text before the first verb of an outcome message
func messagePrefix(format string) string {
	prefix, _, _ := strings.Cut(format, "%")
	return prefix
}

// classifyOutcome recovers the outcome kind from the public response fields.
// The API keeps the kind internal, so the bot reads it back from the level
// change and the message text.
func classifyOutcome(o domain.UpgradeOutcome) domain.OutcomeResult {
	switch {
	case o.Success:
		return domain.OutcomeSuccess
	case o.NewUpgradeLevel != nil:
		return domain.OutcomeDowngraded
	case o.Message == domain.MsgMaxLevelReached:
		return domain.OutcomeMaxLevel
	case strings.HasPrefix(o.Message, messagePrefix(domain.MsgProtectedBySigil)):
		return domain.OutcomeProtected
	default:
		return domain.OutcomeFailed
	}
}

var outcomeIcons = map[domain.OutcomeResult]string{
	domain.OutcomeSuccess:    "⚒️",
	domain.OutcomeDowngraded: "💥",
	domain.OutcomeMaxLevel:   "🏆",
	domain.OutcomeProtected:  "🛡️",
	domain.OutcomeFailed:     "💨",
}

var outcomeColors = map[domain.OutcomeResult]int{
	domain.OutcomeSuccess:    ColorSuccess,
	domain.OutcomeDowngraded: ColorDowngrade,
	domain.OutcomeMaxLevel:   ColorMaxLevel,
	domain.OutcomeProtected:  ColorProtected,
	domain.OutcomeFailed:     ColorFailure,
}

// outcomeEmbed renders an upgrade outcome
func outcomeEmbed(o domain.UpgradeOutcome) *discordgo.MessageEmbed {
	kind := classifyOutcome(o)
	title := fmt.Sprintf("%s %s", outcomeIcons[kind], titleCase(strings.ReplaceAll(string(kind), "_", " ")))

	desc := o.Message
	if o.Glow {
		desc += "\n" + glowMark + " " + MsgWeaponGlows
	}

	embed := createEmbed(title, desc, outcomeColors[kind])
	if o.NewUpgradeLevel != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Level",
			Value:  fmt.Sprintf("+%d", *o.NewUpgradeLevel),
			Inline: true,
		})
	}
	return embed
}

// playerEmbed renders a player's weapon and sigils
func playerEmbed(p domain.Player) *discordgo.MessageEmbed {
	title := fmt.Sprintf("⚔️ %s's Weapon", p.Username)
	embed := createEmbed(title, weaponLabel(p.Weapon), ColorInfo)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Level", Value: fmt.Sprintf("+%d", p.Weapon.UpgradeLevel), Inline: true},
		{Name: "Sigils", Value: fmt.Sprintf("%d", p.Inventory.SigilProtection), Inline: true},
	}
	return embed
}

// oddsTable renders the chance of each target level, one per line
func oddsTable(c ChancesResponse) string {
	var sb strings.Builder
	for _, e := range c.Chances {
		fmt.Fprintf(&sb, "`+%2d` %5.1f%%", e.TargetLevel, e.Chance*100)
		if e.TargetLevel >= c.GlowLevel {
			sb.WriteString(" " + glowMark)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
