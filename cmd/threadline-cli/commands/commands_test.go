package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlowDefinition(t *testing.T) {
	accountID := uuid.New()

	t.Run("should parse a complete flow definition", func(t *testing.T) {
		def, err := parseFlowDefinition(strings.NewReader(`
name: Support
active: true
aiEnabled: true
availableDomains: [mobile, web]
maxAttempts: 5
inputs:
  - provider: slack
    settings:
      channel: C123
outputs:
  - provider: jira
    connectedAccountId: ` + accountID.String() + `
    domain: mobile
    isDefault: true
    fieldMapping:
      priority: priority
    valueMap:
      priority:
        high: Highest
`))
		require.NoError(t, err)

		assert.Equal(t, "Support", def.Name)
		assert.True(t, def.Active)
		assert.Equal(t, []string{"mobile", "web"}, def.AvailableDomains)
		require.NotNil(t, def.MaxAttempts)
		assert.Equal(t, 5, *def.MaxAttempts)
		require.Len(t, def.Inputs, 1)
		assert.Equal(t, "C123", def.Inputs[0].Settings["channel"])
		require.Len(t, def.Outputs, 1)
		assert.Equal(t, accountID, *def.Outputs[0].ConnectedAccountID)
		assert.Equal(t, "mobile", *def.Outputs[0].Domain)
		assert.Equal(t, "Highest", def.Outputs[0].ValueMap["priority"]["high"])
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := parseFlowDefinition(strings.NewReader("name: Support\nactve: true\n"))
		assert.Error(t, err)
	})

	t.Run("should reject a definition without name", func(t *testing.T) {
		_, err := parseFlowDefinition(strings.NewReader("active: true\n"))
		assert.ErrorContains(t, err, "invalid flow definition")
	})

	t.Run("should reject outputs with a source provider", func(t *testing.T) {
		_, err := parseFlowDefinition(strings.NewReader(`
name: Support
outputs:
  - provider: slack
    connectedAccountId: ` + accountID.String() + "\n"))
		assert.Error(t, err)
	})
}

func TestParseJobStatus(t *testing.T) {
	t.Run("should return nil for an empty status", func(t *testing.T) {
		status, err := parseJobStatus("")
		assert.NoError(t, err)
		assert.Nil(t, status)
	})

	t.Run("should accept known statuses", func(t *testing.T) {
		status, err := parseJobStatus("retrying")
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusRetrying, *status)
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		_, err := parseJobStatus("done")
		assert.Error(t, err)
	})
}

func TestPrintTables(t *testing.T) {
	t.Run("should render one row per job with attempts and error", func(t *testing.T) {
		var buf bytes.Buffer
		errMsg := "jira unavailable"
		printJobs(&buf, []models.Job{
			{Stage: models.JobStageCreate, Status: models.JobStatusRetrying, Attempts: 2, MaxAttempts: 3, Error: &errMsg},
		})

		out := buf.String()
		assert.Contains(t, out, "2/3")
		assert.Contains(t, out, "jira unavailable")
		assert.Contains(t, out, "create")
	})

	t.Run("should render the token hint and a placeholder for unverified accounts", func(t *testing.T) {
		var buf bytes.Buffer
		printAccounts(&buf, []dtos.ConnectedAccountDTO{
			{Provider: "jira", Label: "acme", AccessTokenHint: "...abcd", Status: "connected"},
		})

		out := buf.String()
		assert.Contains(t, out, "acme")
		assert.Contains(t, out, "...abcd")
		assert.Contains(t, out, "-")
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("should register all sub commands", func(t *testing.T) {
		root := GetRootCmd()
		root.AddCommand(NewMigrateCommand(), NewJobsCommand(), NewAccountsCommand(), NewFlowsCommand(), NewCredentialsCommand())

		for _, path := range [][]string{
			{"migrate", "up"},
			{"migrate", "down"},
			{"jobs", "list"},
			{"jobs", "run"},
			{"accounts", "verify"},
			{"flows", "import"},
			{"credentials", "store"},
		} {
			cmd, _, err := root.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], cmd.Name())
		}
	})

	t.Run("should require a team", func(t *testing.T) {
		cmd := NewFlowsCommand()
		list, _, err := cmd.Find([]string{"list"})
		require.NoError(t, err)
		_, err = teamFlag(list)
		assert.ErrorContains(t, err, "--team is required")
	})
}
