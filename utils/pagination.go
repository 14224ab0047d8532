package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Paginator slices an ordered collection into fixed-size pages and renders
// one page at a time through the RenderPage callback. It keeps no state on
// the server: the current page, the invoking user and any re-derivation
// arguments travel inside the navigation buttons' custom IDs, so the
// component handler can rebuild the view from the token alone.
type Paginator[T any] struct {
	Title          string
	Items          []T
	PageSize       int
	CustomIDPrefix string
	OwnerID        string   // only this user may turn pages
	Args           []string // opaque args carried in the token for re-derivation
	RenderPage     func(items []T, embed *discordgo.MessageEmbed)
}

// TotalPages returns ceil(len(Items) / PageSize).
func (p *Paginator[T]) TotalPages() int {
	if p.PageSize < 1 || len(p.Items) == 0 {
		return 0
	}
	return (len(p.Items) + p.PageSize - 1) / p.PageSize
}

// ClampPage forces page into [1, TotalPages]; out-of-range requests are
// no-ops rather than errors.
func (p *Paginator[T]) ClampPage(page int) int {
	total := p.TotalPages()
	if page < 1 {
		return 1
	}
	if total > 0 && page > total {
		return total
	}
	return page
}

// Page builds the embed and navigation components for one page. An empty
// collection renders a single empty-state page with no controls.
func (p *Paginator[T]) Page(page int) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: p.Title,
		Color: ColorNeutral,
	}

	if len(p.Items) == 0 {
		embed.Description = "未找到记录。"
		return embed, nil
	}

	total := p.TotalPages()
	page = p.ClampPage(page)

	start := (page - 1) * p.PageSize
	end := start + p.PageSize
	if end > len(p.Items) {
		end = len(p.Items)
	}

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("第 %d 页，共 %d 页", page, total),
	}
	if p.RenderPage != nil {
		p.RenderPage(p.Items[start:end], embed)
	}

	return embed, p.pageComponents(page, total)
}

func (p *Paginator[T]) pageComponents(currentPage, totalPages int) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "上一页",
					Style:    discordgo.PrimaryButton,
					Disabled: currentPage == 1,
					CustomID: p.customID(currentPage - 1),
				},
				discordgo.Button{
					Label:    "下一页",
					Style:    discordgo.PrimaryButton,
					Disabled: currentPage == totalPages,
					CustomID: p.customID(currentPage + 1),
				},
			},
		},
	}
}

func (p *Paginator[T]) customID(page int) string {
	id := fmt.Sprintf("%s:%d:%s", p.CustomIDPrefix, page, p.OwnerID)
	for _, arg := range p.Args {
		id += ":" + arg
	}
	return id
}

// Respond edits the interaction response with the given page. Works both for
// the initial deferred command response and for later message updates, which
// makes replaying the same navigation token harmless.
func (p *Paginator[T]) Respond(s *discordgo.Session, i *discordgo.Interaction, page int) error {
	embed, components := p.Page(page)
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	_, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	return err
}

// PageToken is the decoded form of a navigation button's custom ID.
type PageToken struct {
	Prefix  string
	Page    int
	OwnerID string
	Args    []string
}

// ParsePageToken decodes a custom ID of the form "prefix:page:ownerID[:args...]".
func ParsePageToken(customID string) (*PageToken, error) {
	parts := strings.Split(customID, ":")
	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid pagination custom ID: %s", customID)
	}
	page, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid page in custom ID %s: %w", customID, err)
	}
	return &PageToken{
		Prefix:  parts[0],
		Page:    page,
		OwnerID: parts[2],
		Args:    parts[3:],
	}, nil
}
