package delve

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

const (
	colorHealthy = 0x2ecc71
	colorWounded = 0xf1c40f
	colorDanger  = 0xe74c3c
	colorDead    = 0x2c3e50
	colorInfo    = 0x3498db

	barWidth = 10

	// messages beyond this are summarised
	maxLogLines = 8
)

// Bar draws a fixed width gauge
func Bar(current, maximum int) string {
	if maximum <= 0 {
		return strings.Repeat("░", barWidth)
	}
	filled := max(0, min(barWidth, current*barWidth/maximum))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func healthColor(s turn.Snapshot, dead bool) int {
	switch {
	case dead:
		return colorDead
	case s.MaxHP > 0 && s.HP*10 <= s.MaxHP*3:
		return colorDanger
	case s.HP < s.MaxHP:
		return colorWounded
	default:
		return colorHealthy
	}
}

func poolFields(s turn.Snapshot) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name:   "❤️ Hit Points",
			Value:  fmt.Sprintf("`%s` %d/%d", Bar(s.HP, s.MaxHP), s.HP, s.MaxHP),
			Inline: true,
		},
		{
			Name:   "✨ Spell Points",
			Value:  fmt.Sprintf("`%s` %d/%d", Bar(s.Mana, s.MaxMana), s.Mana, s.MaxMana),
			Inline: true,
		},
	}
}

func logField(messages []string) *discordgo.MessageEmbedField {
	if len(messages) == 0 {
		return nil
	}
	lines := messages
	extra := 0
	if len(lines) > maxLogLines {
		extra = len(lines) - maxLogLines
		lines = lines[len(lines)-maxLogLines:]
	}
	value := strings.Join(lines, "\n")
	if extra > 0 {
		value = fmt.Sprintf("*…%d earlier messages*\n%s", extra, value)
	}
	return &discordgo.MessageEmbedField{Name: "📜 Log", Value: value}
}

// VitalsEmbed shows a player's pools and rest state
func VitalsEmbed(report *turn.VitalsReport) *discordgo.MessageEmbed {
	dead := report.Status == shared.PlayerStatusDead

	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("🧝 %s", report.Name),
		Color:  healthColor(report.Vitals, dead),
		Fields: poolFields(report.Vitals),
	}

	switch {
	case dead:
		embed.Description = fmt.Sprintf("💀 Killed by %s.", report.DiedFrom)
	case report.Resting:
		embed.Description = fmt.Sprintf("💤 Resting %s.", DescribeCode(report.Count))
	case report.LowHP:
		embed.Description = "⚠️ Low hitpoint warning!"
	}

	if report.RepeatCount != 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🔁 Repeat",
			Value:  DescribeCode(report.RepeatCount),
			Inline: true,
		})
	}
	if field := logField(report.Messages); field != nil {
		embed.Fields = append(embed.Fields, field)
	}
	return embed
}

// RestEmbed summarises a finished rest
func RestEmbed(name string, report *turn.RestReport) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("💤 %s rests %s", name, DescribeCode(report.Code)),
		Color:  healthColor(report.After, report.Dead),
		Fields: poolFields(report.After),
	}

	switch {
	case report.Dead:
		embed.Description = fmt.Sprintf("💀 Died from %s after %d turns.", report.DiedFrom, report.Turns)
	case report.Interrupted:
		embed.Description = fmt.Sprintf("⚔️ Disturbed after %d turns.", report.Turns)
	case report.Capped:
		embed.Description = fmt.Sprintf("⏳ Gave up after %d turns.", report.Turns)
	case report.End == rest.EndCompleted:
		embed.Description = fmt.Sprintf("✅ Rested %d turns.", report.Turns)
	default:
		embed.Description = fmt.Sprintf("Rested %d turns.", report.Turns)
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "📈 Recovered",
		Value:  fmt.Sprintf("HP %+d, SP %+d", report.After.HP-report.Before.HP, report.After.Mana-report.Before.Mana),
		Inline: true,
	})
	if report.Hits > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🩸 Hits taken",
			Value:  fmt.Sprintf("%d", report.Hits),
			Inline: true,
		})
	}
	if field := logField(report.Messages); field != nil {
		embed.Fields = append(embed.Fields, field)
	}
	return embed
}

// DamageEmbed shows the result of a hit
func DamageEmbed(name string, report *turn.DamageReport) *discordgo.MessageEmbed {
	out := report.Outcome
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("🗡️ %s is hit by %s", name, report.Cause),
		Color:  healthColor(report.After, out.Killed),
		Fields: poolFields(report.After),
	}

	switch {
	case out.Killed:
		embed.Description = "💀 You die."
	case out.Applied == 0:
		embed.Description = "🛡️ The blow has no effect."
	case out.Reprieved:
		embed.Description = fmt.Sprintf("Took %d damage and clung to life.", out.Applied)
	default:
		embed.Description = fmt.Sprintf("Took %d damage.", out.Applied)
	}

	if field := logField(report.Messages); field != nil {
		embed.Fields = append(embed.Fields, field)
	}
	return embed
}

// ErrorContent turns a service error into a user-facing line
func ErrorContent(err error) string {
	switch errors.GetCode(err) {
	case errors.CodeGameOver:
		return fmt.Sprintf("💀 %v. Use `/delve new` to start again.", err)
	case errors.CodeNotFound, errors.CodeInvalidArgument:
		return fmt.Sprintf("❌ %v", err)
	default:
		return "❌ Something went wrong, please try again."
	}
}
