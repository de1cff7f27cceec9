package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
)

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func statusColor(status string) text.Colors {
	switch status {
	case string(models.JobStatusCompleted), string(models.AccountStatusConnected):
		return text.Colors{text.FgGreen}
	case string(models.JobStatusFailed):
		return text.Colors{text.FgRed}
	case string(models.JobStatusRetrying):
		return text.Colors{text.FgYellow}
	}
	return text.Colors{}
}

func printJobs(w io.Writer, jobs []models.Job) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetAllowedRowLength(160)
	tw.AppendHeader(table.Row{"ID", "Discussion", "Stage", "Status", "Attempts", "Trigger", "Next run", "Error"})
	for _, job := range jobs {
		errMsg := ""
		if job.Error != nil {
			errMsg = text.WrapText(*job.Error, 60)
		}
		tw.AppendRow(table.Row{
			job.ID,
			job.DiscussionID,
			job.Stage,
			statusColor(string(job.Status)).Sprint(job.Status),
			fmt.Sprintf("%d/%d", job.Attempts, job.MaxAttempts),
			job.Trigger,
			formatTime(job.NextRunAt),
			errMsg,
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", "", "Total", len(jobs)})
	tw.Render()
}

func printAccounts(w io.Writer, accounts []dtos.ConnectedAccountDTO) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Provider", "Label", "Status", "Token", "Last verified"})
	for _, account := range accounts {
		tw.AppendRow(table.Row{
			account.ID,
			account.Provider,
			account.Label,
			statusColor(string(account.Status)).Sprint(account.Status),
			account.AccessTokenHint,
			formatTime(account.LastVerifiedAt),
		})
	}
	tw.Render()
}

func printFlows(w io.Writer, flows []models.Flow) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Slug", "Name", "Active", "AI", "Inputs", "Outputs"})
	for _, flow := range flows {
		tw.AppendRow(table.Row{flow.ID, flow.Slug, flow.Name, flow.Active, flow.AIEnabled, len(flow.Inputs), len(flow.Outputs)})
	}
	tw.Render()
}
