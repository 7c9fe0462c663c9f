package discord

import "github.com/bwmarrin/discordgo"

// StringOptions collects the string options of a slash command by name.
func StringOptions(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(options))
	for _, opt := range options {
		if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		out[opt.Name] = opt.StringValue()
	}
	return out
}
