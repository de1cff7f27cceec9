package commands

import (
	"strings"
	"testing"

	"github.com/l3montree-dev/threadline/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestWithKeyringPassword(t *testing.T) {
	cfg := database.PoolConfig{User: "threadline", Host: "db", Port: "5432", DBName: "threadline"}

	t.Run("should fill an empty password from the keyring", func(t *testing.T) {
		keyring.MockInit()
		require.NoError(t, keyring.Set(keyringService(cfg), keyringUser(cfg), "s3cret"))

		assert.Equal(t, "s3cret", withKeyringPassword(cfg).Password)
	})

	t.Run("should prefer a password from the environment", func(t *testing.T) {
		keyring.MockInit()
		require.NoError(t, keyring.Set(keyringService(cfg), keyringUser(cfg), "s3cret"))

		withEnv := cfg
		withEnv.Password = "from-env"
		assert.Equal(t, "from-env", withKeyringPassword(withEnv).Password)
	})

	t.Run("should keep the config untouched when nothing is stored", func(t *testing.T) {
		keyring.MockInit()
		assert.Empty(t, withKeyringPassword(cfg).Password)
	})

	t.Run("should key stored passwords by database", func(t *testing.T) {
		other := cfg
		other.DBName = "staging"
		assert.NotEqual(t, keyringService(cfg), keyringService(other))
	})
}

func TestReadPassword(t *testing.T) {
	t.Run("should read a single line without the line break", func(t *testing.T) {
		password, err := readPassword(strings.NewReader("s3cret\r\nignored\n"))
		require.NoError(t, err)
		assert.Equal(t, "s3cret", password)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := readPassword(strings.NewReader(""))
		assert.Error(t, err)
	})
}
