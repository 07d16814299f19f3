package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

const (
	colorPositive = "107c10"
	colorNegative = "d13438"
	colorNeutral  = "0078d4"
)

func buildReportCard(report *models.Report) *TeamsMessage {
	s := report.Summary
	message := &TeamsMessage{
		Type:       "MessageCard",
		Context:    "https://schema.org/extensions",
		ThemeColor: reportColor(s),
		Title:      fmt.Sprintf("EV Sentiment Report - %s", title(report.Period)),
		Text:       fmt.Sprintf("Classified %d comments (%d failed enrichment)", report.TotalComments, s.FailedComments),
	}

	message.Sections = append(message.Sections, TeamsSection{
		ActivityTitle: "Summary",
		Facts: []TeamsFact{
			{Name: "Total Comments", Value: fmt.Sprint(report.TotalComments)},
			{Name: "Positive", Value: fmt.Sprint(s.SentimentDistribution[models.SentimentPositive])},
			{Name: "Negative", Value: fmt.Sprint(s.SentimentDistribution[models.SentimentNegative])},
			{Name: "Neutral", Value: fmt.Sprint(s.SentimentDistribution[models.SentimentNeutral])},
			{Name: "Average Confidence", Value: fmt.Sprintf("%.2f", s.AverageConfidence)},
			{Name: "Sarcasm", Value: fmt.Sprintf("%.1f%%", s.SarcasmPercentage)},
			{Name: "Multilingual", Value: fmt.Sprintf("%.1f%%", s.MultilingualPercentage)},
			{Name: "Generated", Value: report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
		Markdown: true,
	})

	for _, brand := range sortedBrands(report) {
		m := report.Brands[brand]
		subtitle := ""
		if m.Period != nil {
			subtitle = m.Period.Description
		}
		message.Sections = append(message.Sections, TeamsSection{
			ActivityTitle:    brand,
			ActivitySubtitle: subtitle,
			Facts: []TeamsFact{
				{Name: "Comments", Value: fmt.Sprintf("%d (%s confidence)", m.TotalComments, m.ConfidenceLevel)},
				{Name: "Positive / Negative / Neutral", Value: fmt.Sprintf("%.1f%% / %.1f%% / %.1f%%",
					m.PositivePercentage, m.NegativePercentage, m.NeutralPercentage)},
				{Name: "Net Sentiment", Value: fmt.Sprintf("%+.1f", m.SentimentScore)},
				{Name: "Brand Strength", Value: fmt.Sprintf("%.1f", m.BrandStrengthScore)},
				{Name: "Strengths", Value: joinOrDash(m.BrandStrength.TopStrengths)},
				{Name: "Weaknesses", Value: joinOrDash(m.BrandStrength.TopWeaknesses)},
			},
			Markdown: true,
		})
	}

	if notable := notableComments(report.Comments, teamsCommentLimit); len(notable) > 0 {
		var lines []string
		for _, c := range notable {
			lines = append(lines, fmt.Sprintf("**%s** %.2f - [%s](%s) (%d likes)",
				c.Classification.Sentiment, c.Classification.Confidence,
				excerpt(c.Text, 120), c.VideoURL, c.Likes))
		}
		message.Sections = append(message.Sections, TeamsSection{
			ActivityTitle: "Notable Comments",
			ActivityText:  strings.Join(lines, "\n\n"),
			Markdown:      true,
		})
	}

	return message
}

func buildAlertCard(alert *models.Alert) *TeamsMessage {
	message := &TeamsMessage{
		Type:       "MessageCard",
		Context:    "https://schema.org/extensions",
		ThemeColor: colorNegative,
		Title:      alert.Title,
		Text:       alert.Message,
	}

	if c := alert.Comment; c != nil {
		cl := c.Classification
		message.Sections = append(message.Sections, TeamsSection{
			ActivityTitle:    alert.Brand,
			ActivitySubtitle: c.VideoTitle,
			ActivityText:     excerpt(c.Text, excerptLength),
			Facts: []TeamsFact{
				{Name: "Sentiment", Value: fmt.Sprintf("%s (%.2f)", cl.Sentiment, cl.Confidence)},
				{Name: "Engagement", Value: fmt.Sprintf("%s - %d likes, %d replies", cl.EngagementAnalysis.EngagementLevel, c.Likes, c.Replies)},
				{Name: "Reason", Value: cl.PatternAnalysis.Reason},
				{Name: "Link", Value: c.VideoURL},
			},
			Markdown: true,
		})
	}

	return message
}

func buildReportText(report *models.Report) string {
	var text strings.Builder
	s := report.Summary

	fmt.Fprintf(&text, "EV Sentiment Report - %s\n", title(report.Period))
	fmt.Fprintf(&text, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	text.WriteString("SUMMARY\n")
	text.WriteString("=======\n")
	fmt.Fprintf(&text, "Total Comments: %d\n", report.TotalComments)
	for _, label := range []string{models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral} {
		fmt.Fprintf(&text, "%s: %d\n", title(label), s.SentimentDistribution[label])
	}
	fmt.Fprintf(&text, "Average Confidence: %.2f\n", s.AverageConfidence)
	fmt.Fprintf(&text, "Sarcasm: %.1f%% | Multilingual: %.1f%%\n", s.SarcasmPercentage, s.MultilingualPercentage)
	if len(s.TopBrands) > 0 {
		fmt.Fprintf(&text, "Most Mentioned: %s\n", strings.Join(s.TopBrands, ", "))
	}

	if len(report.Brands) > 0 {
		text.WriteString("\nBRANDS\n")
		text.WriteString("======\n")
		for _, brand := range sortedBrands(report) {
			m := report.Brands[brand]
			fmt.Fprintf(&text, "\n%s: %d comments, %.1f%% positive, %.1f%% negative, net %+.1f, strength %.1f\n",
				brand, m.TotalComments, m.PositivePercentage, m.NegativePercentage, m.SentimentScore, m.BrandStrengthScore)
			fmt.Fprintf(&text, "   Strengths: %s | Weaknesses: %s\n",
				joinOrDash(m.BrandStrength.TopStrengths), joinOrDash(m.BrandStrength.TopWeaknesses))
		}
	}

	if notable := notableComments(report.Comments, emailCommentLimit); len(notable) > 0 {
		text.WriteString("\nNOTABLE COMMENTS\n")
		text.WriteString("================\n")
		for i, c := range notable {
			fmt.Fprintf(&text, "\n%d. [%s %.2f] %s\n", i+1, c.Classification.Sentiment, c.Classification.Confidence, excerpt(c.Text, excerptLength))
			fmt.Fprintf(&text, "   %s | %s | %d likes\n", c.OEM, c.VideoURL, c.Likes)
		}
	}

	text.WriteString("\n---\nThis report was generated automatically by the OEM Sentiment Bot.\n")
	return text.String()
}

func buildAlertText(alert *models.Alert) string {
	var text strings.Builder
	fmt.Fprintf(&text, "%s\n\n%s\n", alert.Title, alert.Message)
	if c := alert.Comment; c != nil {
		fmt.Fprintf(&text, "\nComment: %s\n", excerpt(c.Text, excerptLength))
		fmt.Fprintf(&text, "Likes: %d | Replies: %d | Link: %s\n", c.Likes, c.Replies, c.VideoURL)
	}
	return text.String()
}

var templateFuncs = template.FuncMap{
	"title":   title,
	"excerpt": excerpt,
	"notable": notableComments,
	"brands":  sortedBrands,
	"pct":     func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
}

var reportTemplate = template.Must(template.New("report").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>EV Sentiment Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #0078d4; color: white; padding: 20px; border-radius: 5px; }
        .summary { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px; }
        .comment { border-left: 4px solid #605e5c; padding: 10px; margin: 10px 0; background-color: #fafafa; }
        .comment-meta { color: #666; font-size: 0.9em; }
        .positive { border-left-color: #107c10; }
        .negative { border-left-color: #d13438; }
        table { border-collapse: collapse; }
        td, th { border: 1px solid #ddd; padding: 6px 10px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>EV Sentiment Report</h1>
        <p>{{title .Period}} report generated on {{.GeneratedAt.Format "January 2, 2006 at 3:04 PM MST"}}</p>
    </div>

    <div class="summary">
        <h2>Summary</h2>
        <p><strong>Total Comments:</strong> {{.TotalComments}}</p>
        {{range $label, $count := .Summary.SentimentDistribution}}
            <p><strong>{{title $label}}:</strong> {{$count}}</p>
        {{end}}
        <p><strong>Sarcasm:</strong> {{pct .Summary.SarcasmPercentage}} | <strong>Multilingual:</strong> {{pct .Summary.MultilingualPercentage}}</p>
    </div>

    {{if .Brands}}
    <h2>Brands</h2>
    <table>
        <tr><th>Brand</th><th>Comments</th><th>Positive</th><th>Negative</th><th>Neutral</th><th>Strength</th><th>Top strengths</th><th>Top weaknesses</th></tr>
        {{range $name := brands $}}{{with index $.Brands $name}}
        <tr><td>{{$name}}</td><td>{{.TotalComments}}</td><td>{{pct .PositivePercentage}}</td><td>{{pct .NegativePercentage}}</td><td>{{pct .NeutralPercentage}}</td><td>{{printf "%.1f" .BrandStrengthScore}}</td><td>{{range .BrandStrength.TopStrengths}}{{.}} {{end}}</td><td>{{range .BrandStrength.TopWeaknesses}}{{.}} {{end}}</td></tr>
        {{end}}{{end}}
    </table>
    {{end}}

    {{with notable .Comments 10}}
    <h2>Notable Comments</h2>
    {{range .}}
        <div class="comment {{.Classification.Sentiment}}">
            <p>{{excerpt .Text 200}}</p>
            <div class="comment-meta">
                {{.OEM}} | {{.Classification.Sentiment}} {{printf "%.2f" .Classification.Confidence}} | {{.Likes}} likes
                {{if .VideoURL}} | <a href="{{.VideoURL}}" target="_blank">source</a>{{end}}
            </div>
        </div>
    {{end}}
    {{end}}

    <hr>
    <p><small>This report was generated automatically by the OEM Sentiment Bot.</small></p>
</body>
</html>
`))

var alertTemplate = template.Must(template.New("alert").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif;">
    <h2 style="color: #d13438;">{{.Title}}</h2>
    <p>{{.Message}}</p>
    {{with .Comment}}
    <blockquote>{{excerpt .Text 200}}</blockquote>
    <p>{{.Likes}} likes, {{.Replies}} replies{{if .VideoURL}} | <a href="{{.VideoURL}}">open</a>{{end}}</p>
    {{end}}
</body>
</html>
`))

func buildReportHTML(report *models.Report) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildAlertHTML(alert *models.Alert) (string, error) {
	var buf bytes.Buffer
	if err := alertTemplate.Execute(&buf, alert); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func reportColor(s models.BatchSummary) string {
	pos, neg := s.SentimentDistribution[models.SentimentPositive], s.SentimentDistribution[models.SentimentNegative]
	switch {
	case pos > neg:
		return colorPositive
	case neg > pos:
		return colorNegative
	default:
		return colorNeutral
	}
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
