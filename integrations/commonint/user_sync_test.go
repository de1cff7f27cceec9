// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commonint

import (
	"testing"

	"github.com/l3montree-dev/threadline/shared"
	"github.com/stretchr/testify/assert"
)

func TestParseUserSync(t *testing.T) {
	t.Run("should parse the handles after the marker", func(t *testing.T) {
		handles, ok := ParseUserSync("@bot User Sync: @alice @bob")
		assert.True(t, ok)
		assert.Equal(t, []string{"alice", "bob"}, handles)
	})

	t.Run("should accept slack style mentions and remove duplicates", func(t *testing.T) {
		handles, ok := ParseUserSync("<@U0BOT> user sync: <@U111|alice>, <@U222> <@U111>")
		assert.True(t, ok)
		assert.Equal(t, []string{"U111", "U222"}, handles)
	})

	t.Run("should find the marker on a later line", func(t *testing.T) {
		handles, ok := ParseUserSync("hey team\n@threadline User Sync: @carol.smith.\n@dave")
		assert.True(t, ok)
		assert.Equal(t, []string{"carol.smith", "dave"}, handles)
	})

	t.Run("should require a mention in front of the marker", func(t *testing.T) {
		_, ok := ParseUserSync("User Sync: @alice")
		assert.False(t, ok)
	})

	t.Run("should ignore regular comments", func(t *testing.T) {
		_, ok := ParseUserSync("@alice can you fix the header?")
		assert.False(t, ok)
	})

	t.Run("should not treat email addresses as mentions", func(t *testing.T) {
		assert.Equal(t, []string{"bob"}, ParseMentions("mail alice@example.com or @bob"))
	})
}

func TestSignatures(t *testing.T) {
	t.Run("should produce the hex digest providers send", func(t *testing.T) {
		// echo -n body | openssl dgst -sha256 -hmac secret
		assert.Equal(t, "dc46983557fea127b43af721467eb9b3fde2338fe3e14f51952aa8478c13d355", HMACSHA256Hex("secret", []byte("body")))
	})

	t.Run("should compare passcodes in constant time", func(t *testing.T) {
		assert.True(t, ConstantTimeEqual("s3cret", "s3cret"))
		assert.False(t, ConstantTimeEqual("s3cret", "guess"))
		assert.False(t, ConstantTimeEqual("", ""))
	})
}

func TestStatusError(t *testing.T) {
	t.Run("should map provider status codes onto error kinds", func(t *testing.T) {
		assert.Equal(t, shared.ErrorKindAuth, shared.KindOf(StatusError("op", 401, "")))
		assert.Equal(t, shared.ErrorKindAuth, shared.KindOf(StatusError("op", 403, "")))
		assert.Equal(t, shared.ErrorKindTransient, shared.KindOf(StatusError("op", 429, "")))
		assert.Equal(t, shared.ErrorKindTransient, shared.KindOf(StatusError("op", 503, "")))
		assert.Equal(t, shared.ErrorKindFatal, shared.KindOf(StatusError("op", 400, "bad field")))
		assert.Equal(t, shared.ErrorKindFatal, shared.KindOf(StatusError("op", 404, "")))
	})
}

func TestTitleFromContent(t *testing.T) {
	assert.Equal(t, "first line", TitleFromContent("\n  first line \nsecond"))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, []string{"a", "b"}, StringSlice([]any{"a", 1, "b"}))
	assert.Equal(t, []string{"a", "b"}, Dedupe("a", "", "b", "a"))
}
