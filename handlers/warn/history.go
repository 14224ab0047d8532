package warn

import (
	"fmt"
	"log"

	"mod-helper/bot"
	"mod-helper/model"
	"mod-helper/utils"
	"mod-helper/utils/database/moderation"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

const warningsPerPage = 2

// HistoryPagePrefix is the custom ID prefix of the history pagination buttons.
const HistoryPagePrefix = "warn_history_page"

// HandleWarnHistoryCommand 处理 /warn-history 命令
func HandleWarnHistoryCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Failed to defer interaction: %v", err)
		return
	}

	options := i.ApplicationCommandData().Options
	optionMap := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		optionMap[opt.Name] = opt
	}

	targetUser := optionMap["user"].UserValue(s)
	invoker := interactionUser(i)

	displayWarnHistory(s, i.Interaction, b.DB, i.GuildID, targetUser.ID, targetUser.Username, invoker.ID, 1)
}

// displayWarnHistory re-derives the warning list from the store and renders
// the requested page. Called both for the initial command and for later
// navigation presses, so replaying a token just re-renders the same page.
func displayWarnHistory(s *discordgo.Session, i *discordgo.Interaction, db *sqlx.DB, guildID, userID, username, ownerID string, page int) {
	records, err := moderation.GetWarningsByMember(db, guildID, userID)
	if err != nil {
		log.Printf("Error fetching warnings for user %s in guild %s: %v", userID, guildID, err)
		utils.SendFollowUpError(s, i, "检索警告记录失败。")
		return
	}

	paginator := &utils.Paginator[model.WarningDetail]{
		Title:          fmt.Sprintf("%s 的警告记录", username),
		Items:          records,
		PageSize:       warningsPerPage,
		CustomIDPrefix: HistoryPagePrefix,
		OwnerID:        ownerID,
		Args:           []string{guildID, userID, username},
		RenderPage:     renderHistoryPage,
	}

	if err := paginator.Respond(s, i, page); err != nil {
		log.Printf("Error rendering warning history page %d: %v", page, err)
	}
}

// HandleWarnHistoryPagination 处理翻页按钮。只有发起查询的用户可以翻页。
func HandleWarnHistoryPagination(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	token, err := utils.ParsePageToken(i.MessageComponentData().CustomID)
	if err != nil || len(token.Args) != 3 {
		log.Printf("Invalid custom ID for history pagination: %s", i.MessageComponentData().CustomID)
		return
	}

	presser := interactionUser(i)
	if presser == nil || presser.ID != token.OwnerID {
		utils.SendSimpleResponse(s, i, "只有发起查询的用户可以翻页。")
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("Failed to defer pagination interaction: %v", err)
		return
	}

	displayWarnHistory(s, i.Interaction, b.DB, token.Args[0], token.Args[1], token.Args[2], token.OwnerID, token.Page)
}
