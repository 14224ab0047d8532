package warn

import (
	"strings"
	"testing"

	"mod-helper/model"
	"mod-helper/utils"

	"github.com/bwmarrin/discordgo"
)

func TestAppealCustomIDRoundTrip(t *testing.T) {
	id := appealCustomID(42, "alice")
	warningID, username, err := parseAppealCustomID(id)
	if err != nil {
		t.Fatalf("parseAppealCustomID failed: %v", err)
	}
	if warningID != 42 {
		t.Errorf("warningID = %d, want 42", warningID)
	}
	if username != "alice" {
		t.Errorf("username = %q, want %q", username, "alice")
	}
}

func TestAppealCustomIDUsernameWithColon(t *testing.T) {
	// SplitN keeps everything after the second separator in the username.
	warningID, username, err := parseAppealCustomID(appealCustomID(7, "a:b"))
	if err != nil {
		t.Fatalf("parseAppealCustomID failed: %v", err)
	}
	if warningID != 7 || username != "a:b" {
		t.Errorf("got (%d, %q), want (7, %q)", warningID, username, "a:b")
	}
}

func TestParseAppealCustomIDErrors(t *testing.T) {
	for _, customID := range []string{"", "wrong_prefix:1:alice", "warning_appeal_btn:notanumber:alice", "warning_appeal_btn:1"} {
		if _, _, err := parseAppealCustomID(customID); err == nil {
			t.Errorf("parseAppealCustomID(%q) succeeded, want error", customID)
		}
	}
}

func TestAppealComponents(t *testing.T) {
	components := appealComponents(42, "alice")
	row, ok := components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("component is %T, want ActionsRow", components[0])
	}
	button, ok := row.Components[0].(discordgo.Button)
	if !ok {
		t.Fatalf("component is %T, want Button", row.Components[0])
	}
	if button.CustomID != "warning_appeal_btn:42:alice" {
		t.Errorf("button custom ID = %q", button.CustomID)
	}
}

func TestBuildWarningDM(t *testing.T) {
	embed := buildWarningDM("测试服务器", "spam", "<@mod>", false)
	if !strings.Contains(embed.Title, "测试服务器") {
		t.Errorf("title missing guild name: %q", embed.Title)
	}
	if !strings.Contains(embed.Description, "spam") {
		t.Errorf("description missing reason: %q", embed.Description)
	}
	if !strings.Contains(embed.Description, "<@mod>") {
		t.Errorf("non-silent DM missing moderator: %q", embed.Description)
	}
	if embed.Color != utils.ColorFail {
		t.Errorf("color = %#x, want %#x", embed.Color, utils.ColorFail)
	}
}

func TestBuildWarningDMSilent(t *testing.T) {
	embed := buildWarningDM("测试服务器", "spam", "<@mod>", true)
	if strings.Contains(embed.Description, "<@mod>") {
		t.Errorf("silent DM names moderator: %q", embed.Description)
	}
}

func TestBuildIssuedEmbed(t *testing.T) {
	embed := buildIssuedEmbed("<@user>", "spam", false)
	if embed.Color != utils.ColorSuccess {
		t.Errorf("color = %#x, want %#x", embed.Color, utils.ColorSuccess)
	}
	if len(embed.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(embed.Fields))
	}

	embed = buildIssuedEmbed("<@user>", "spam", true)
	if len(embed.Fields) != 3 {
		t.Fatalf("got %d fields with failed DM, want 3", len(embed.Fields))
	}
	if embed.Color != utils.ColorSuccess {
		t.Errorf("failed DM must not change outcome color, got %#x", embed.Color)
	}
}

func TestRenderHistoryPage(t *testing.T) {
	records := []model.WarningDetail{
		{WarningID: 1, Reason: "spam", ModeratorUserID: "mod1", Timestamp: 1700000000},
		{WarningID: 2, Reason: "flood", ModeratorUserID: "mod2", Timestamp: 1700000100},
	}
	embed := &discordgo.MessageEmbed{}
	renderHistoryPage(records, embed)

	if len(embed.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(embed.Fields))
	}
	if !strings.Contains(embed.Fields[0].Name, "ID: 1") {
		t.Errorf("first field name missing warning ID: %q", embed.Fields[0].Name)
	}
	if !strings.Contains(embed.Fields[1].Value, "flood") || !strings.Contains(embed.Fields[1].Value, "mod2") {
		t.Errorf("second field value incomplete: %q", embed.Fields[1].Value)
	}
}
