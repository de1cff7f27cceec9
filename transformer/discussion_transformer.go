// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package transformer

import (
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
)

// DiscussionToDetailsDTO drops the raw payload. It is kept for audits only.
func DiscussionToDetailsDTO(discussion models.Discussion, jobs []models.Job) dtos.DiscussionDetailsDTO {
	tasks := discussion.Tasks
	if tasks == nil {
		tasks = []models.Task{}
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	detected := []models.DetectedTask(discussion.DetectedTasks)
	if detected == nil {
		detected = []models.DetectedTask{}
	}
	return dtos.DiscussionDetailsDTO{
		ID:                discussion.ID,
		TeamID:            discussion.TeamID,
		SourceType:        string(discussion.SourceType),
		SourceDedupKey:    discussion.SourceDedupKey,
		SourceWorkspaceID: discussion.SourceWorkspaceID,
		SourceThreadID:    discussion.SourceThreadID,
		SourceURL:         discussion.SourceURL,
		AuthorName:        discussion.AuthorName,
		Title:             discussion.Title,
		Content:           discussion.Content,
		Participants:      discussion.Participants,
		DetectedTasks:     detected,
		Domain:            discussion.Domain,
		AnalyzedAt:        discussion.AnalyzedAt,
		ProcessingStatus:  string(discussion.ProcessingStatus),
		CreatedAt:         discussion.CreatedAt,
		Tasks:             tasks,
		Jobs:              jobs,
	}
}
