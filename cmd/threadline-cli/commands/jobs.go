package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var jobStatuses = []models.JobStatus{
	models.JobStatusPending,
	models.JobStatusProcessing,
	models.JobStatusRetrying,
	models.JobStatusCompleted,
	models.JobStatusFailed,
}

func parseJobStatus(raw string) (*models.JobStatus, error) {
	if raw == "" {
		return nil, nil
	}
	status := models.JobStatus(raw)
	if !slices.Contains(jobStatuses, status) {
		return nil, fmt.Errorf("unknown job status %q", raw)
	}
	return &status, nil
}

func NewJobsCommand() *cobra.Command {
	jobs := cobra.Command{
		Use:   "jobs",
		Short: "Inspect and drive processing jobs",
	}

	jobs.AddCommand(newJobsListCommand())
	jobs.AddCommand(newJobsDiscussionCommand("retry", "Retry the processing of a discussion", func(ctx context.Context, a app, teamID, discussionID uuid.UUID) (models.Job, error) {
		return a.JobService.Retry(ctx, teamID, discussionID)
	}))
	jobs.AddCommand(newJobsDiscussionCommand("trigger", "Trigger a new processing run for a discussion", func(ctx context.Context, a app, teamID, discussionID uuid.UUID) (models.Job, error) {
		return a.JobService.Trigger(ctx, teamID, discussionID)
	}))
	jobs.AddCommand(newJobsRunCommand())
	return &jobs
}

func newJobsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the jobs of a team",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := teamFlag(cmd)
			if err != nil {
				return err
			}
			rawStatus, _ := cmd.Flags().GetString("status")
			status, err := parseJobStatus(rawStatus)
			if err != nil {
				return err
			}
			return withApp(func(a app) error {
				jobs, err := a.JobService.List(teamID, status)
				if err != nil {
					return err
				}
				printJobs(cmd.OutOrStdout(), jobs)
				return nil
			})
		},
	}
	addTeamFlag(cmd)
	cmd.Flags().String("status", "", "Only list jobs with this status (pending, processing, retrying, completed, failed)")
	return cmd
}

func newJobsDiscussionCommand(use, short string, fn func(ctx context.Context, a app, teamID, discussionID uuid.UUID) (models.Job, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <discussionID>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := teamFlag(cmd)
			if err != nil {
				return err
			}
			discussionID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid discussion id %q: %w", args[0], err)
			}
			return withApp(func(a app) error {
				job, err := fn(cmd.Context(), a, teamID, discussionID)
				if err != nil {
					return err
				}
				printJobs(cmd.OutOrStdout(), []models.Job{job})
				return nil
			})
		},
	}
	addTeamFlag(cmd)
	return cmd
}

// the worker daemon does the same on every tick
func newJobsRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute all runnable jobs once in the foreground",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return withApp(func(a app) error {
				reclaimed, err := a.JobService.ReclaimStale()
				if err != nil {
					return err
				}
				if reclaimed > 0 {
					slog.Info("reclaimed stale jobs", "count", reclaimed)
				}
				runnable, err := a.JobService.ListRunnable(limit)
				if err != nil {
					return err
				}
				if len(runnable) == 0 {
					slog.Info("no runnable jobs")
					return nil
				}

				bar := progressbar.Default(int64(len(runnable)), "executing jobs")
				executed := make([]models.Job, 0, len(runnable))
				for _, job := range runnable {
					result, err := a.JobService.Execute(cmd.Context(), job.ID)
					bar.Add(1) // nolint
					if err != nil {
						slog.Error("could not execute job", "jobID", job.ID, "err", err)
						continue
					}
					executed = append(executed, result)
				}
				printJobs(cmd.OutOrStdout(), executed)
				return nil
			})
		},
	}
	cmd.Flags().Int("limit", 50, "Maximum number of jobs to execute")
	return cmd
}
