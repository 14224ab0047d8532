package defs

import (
	"mod-helper/model"

	"github.com/bwmarrin/discordgo"
)

var (
	administratorPerm   int64 = discordgo.PermissionAdministrator
	moderateMembersPerm int64 = discordgo.PermissionModerateMembers
)

func specialChannelTypeChoices() []*discordgo.ApplicationCommandOptionChoice {
	types := model.SpecialChannelTypes()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(types))
	for _, t := range types {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  t.DisplayName(),
			Value: string(t),
		})
	}
	return choices
}

var ServerConfig = &discordgo.ApplicationCommand{
	Name:        "config",
	Description: "Manage special channel configuration",
	NameLocalizations: &map[discordgo.Locale]string{
		discordgo.ChineseCN: "服务器配置",
		discordgo.ChineseTW: "伺服器配置",
	},
	DescriptionLocalizations: &map[discordgo.Locale]string{
		discordgo.ChineseCN: "管理特殊频道配置",
		discordgo.ChineseTW: "管理特殊頻道配置",
	},
	DefaultMemberPermissions: &administratorPerm,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "set",
			Description: "将一个频道标记为特定用途",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "频道用途",
					Required:    true,
					Choices:     specialChannelTypeChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "目标频道",
					Required:    true,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "get",
			Description: "查询当前的频道配置",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "频道用途",
					Required:    true,
					Choices:     specialChannelTypeChoices(),
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "unset",
			Description: "取消一个频道的特定用途",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "频道用途",
					Required:    true,
					Choices:     specialChannelTypeChoices(),
				},
			},
		},
	},
}

var Warn = &discordgo.ApplicationCommand{
	Name:        "warn",
	Description: "Warn a member for breaking server rules",
	NameLocalizations: &map[discordgo.Locale]string{
		discordgo.ChineseCN: "警告",
		discordgo.ChineseTW: "警告",
	},
	DescriptionLocalizations: &map[discordgo.Locale]string{
		discordgo.ChineseCN: "警告违反服务器规则的成员",
		discordgo.ChineseTW: "警告違反伺服器規則的成員",
	},
	DefaultMemberPermissions: &moderateMembersPerm,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "要警告的用户",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "警告原因",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "silent",
			Description: "是否静默处理（不公开回复，私信中不显示管理员）",
			Required:    false,
		},
	},
}

var WarnHistory = &discordgo.ApplicationCommand{
	Name:        "warn-history",
	Description: "Warning history of a server member",
	NameLocalizations: &map[discordgo.Locale]string{
		discordgo.ChineseCN: "警告记录",
		discordgo.ChineseTW: "警告記錄",
	},
	DescriptionLocalizations: &map[discordgo.Locale]string{
		discordgo.ChineseCN: "查询成员的警告记录",
		discordgo.ChineseTW: "查詢成員的警告記錄",
	},
	DefaultMemberPermissions: &moderateMembersPerm,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "要查询的用户",
			Required:    true,
		},
	},
}
