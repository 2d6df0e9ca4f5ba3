package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/eduvault/eduvault/internal/app/models"
	"github.com/eduvault/eduvault/internal/app/services"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	noticeStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
)

func renderResource(r models.Resource) string {
	saved := "not saved"
	if r.Saved {
		saved = "saved"
	}
	meta := fmt.Sprintf("%s • %s • Grade %s • %s • %s", r.Type, r.Size, r.Grade, r.Uploader, r.Created)
	return fmt.Sprintf("%s  [%s]\n  %s\n  rating %d/5 • %s • %d comment(s)",
		titleStyle.Render(r.Title), r.ID, metaStyle.Render(meta), r.Rating, saved, len(r.Comments))
}

func renderResourceList(list []models.Resource, emptyMessage string) string {
	if len(list) == 0 {
		return noticeStyle.Render(emptyMessage)
	}
	lines := make([]string, 0, len(list))
	for _, r := range list {
		lines = append(lines, renderResource(r))
	}
	return strings.Join(lines, "\n")
}

func renderDetail(r models.Resource) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(r.Title) + "\n")
	b.WriteString(fmt.Sprintf("  id:       %s\n", r.ID))
	b.WriteString(fmt.Sprintf("  uploader: %s\n", r.Uploader))
	b.WriteString(fmt.Sprintf("  type:     %s\n", r.Type))
	b.WriteString(fmt.Sprintf("  size:     %s\n", r.Size))
	b.WriteString(fmt.Sprintf("  grade:    %s\n", r.Grade))
	b.WriteString(fmt.Sprintf("  rating:   %d ★\n", r.Rating))
	b.WriteString(fmt.Sprintf("  created:  %s\n", r.Created))
	if len(r.Comments) == 0 {
		b.WriteString(noticeStyle.Render("  no comments"))
	} else {
		b.WriteString("  comments:\n")
		for _, c := range r.Comments {
			b.WriteString("    - " + c + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSummary(s services.Summary) string {
	return strings.Join([]string{
		headerStyle.Render("Catalog summary"),
		fmt.Sprintf("  uploads today:        %d", s.UploadsToday),
		fmt.Sprintf("  total uploads:        %d", s.TotalUploads),
		fmt.Sprintf("  total saved:          %d", s.TotalSaved),
		fmt.Sprintf("  total downloaded:     %d", s.TotalDownloaded),
		fmt.Sprintf("  unread notifications: %d", s.UnreadNotifications),
	}, "\n")
}

func renderTeachers(stats []services.UploaderStats) string {
	if len(stats) == 0 {
		return noticeStyle.Render("No uploaders yet.")
	}
	lines := make([]string, 0, len(stats))
	for _, t := range stats {
		lines = append(lines, fmt.Sprintf("%s\n  %s",
			titleStyle.Render(t.Name),
			metaStyle.Render(fmt.Sprintf("Uploads: %d • Rating: %.1f", t.Uploads, t.AverageRating))))
	}
	return strings.Join(lines, "\n")
}

func renderNotifications(list []models.Notification) string {
	if len(list) == 0 {
		return noticeStyle.Render("No notifications")
	}
	lines := make([]string, 0, len(list))
	for _, n := range list {
		marker := "•"
		if !n.Read {
			marker = headerStyle.Render("●")
		}
		lines = append(lines, fmt.Sprintf("%s %s (%s)", marker, n.Text, n.Date))
	}
	return strings.Join(lines, "\n")
}
