package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
)

// Console prints reports and alerts for local runs and optionally saves
// each report as JSON under dir
type Console struct {
	out io.Writer
	dir string
	mu  sync.Mutex
}

var _ NotificationInterface = (*Console)(nil)

// NewConsole writes to out; an empty dir disables saving
func NewConsole(out io.Writer, dir string) *Console {
	return &Console{out: out, dir: dir}
}

func (c *Console) SendReport(ctx context.Context, report *models.Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rule := strings.Repeat("=", 70)
	fmt.Fprintln(c.out, "\n"+rule)
	fmt.Fprint(c.out, buildReportText(report))
	fmt.Fprintln(c.out, rule)

	if c.dir == "" {
		return nil
	}
	name, err := c.save(report)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	fmt.Fprintf(c.out, "Report saved to: %s\n", name)
	return nil
}

func (c *Console) SendAlert(ctx context.Context, alert *models.Alert) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, "\nALERT")
	fmt.Fprint(c.out, buildAlertText(alert))
	return nil
}

func (c *Console) save(report *models.Report) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}

	name := filepath.Join(c.dir, fmt.Sprintf("ev_sentiment_report_%s.json", report.GeneratedAt.Format("2006-01-02_15-04-05")))
	return name, os.WriteFile(name, data, 0o644)
}
