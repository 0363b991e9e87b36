package auth

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/dmitrijs2005/vital/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_SixDigits(t *testing.T) {
	var g RandomGenerator
	for i := 0; i < 200; i++ {
		c, err := g.Generate()
		require.NoError(t, err)
		require.Regexp(t, `^[1-9]\d{5}$`, c)
	}
}

func TestSeededGenerator_Deterministic(t *testing.T) {
	a, b := NewSeededGenerator(42), NewSeededGenerator(42)
	for i := 0; i < 20; i++ {
		ca, err := a.Generate()
		require.NoError(t, err)
		cb, _ := b.Generate()
		require.Equal(t, ca, cb)

		n, err := strconv.Atoi(ca)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator("111111", "222222")

	c, _ := g.Generate()
	assert.Equal(t, "111111", c)
	c, _ = g.Generate()
	assert.Equal(t, "222222", c)

	_, err := g.Generate()
	require.ErrorIs(t, err, ErrGeneratorExhausted)
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	ConsoleNotifier{W: &buf}.Notify(context.Background(), "a@b.com", "123456")
	assert.Contains(t, buf.String(), "[FAKE EMAIL RECEIVED]")
	assert.Contains(t, buf.String(), "Your Verification Code is: 123456")

	buf.Reset()
	ConsoleNotifier{W: &buf}.Notify(context.Background(), "+1 555 123 4567", "654321")
	assert.Contains(t, buf.String(), "[FAKE SMS RECEIVED]")
}

func TestLogNotifierAndMulti(t *testing.T) {
	var buf bytes.Buffer
	var got []string

	n := MultiNotifier{
		LogNotifier{Log: logging.New(logging.FormatJSON, "debug", &buf)},
		NotifierFunc(func(_ context.Context, dest, code string) { got = append(got, dest+"="+code) }),
	}
	n.Notify(context.Background(), "a@b.com", "123456")

	assert.Contains(t, buf.String(), `"code":"123456"`)
	assert.Contains(t, buf.String(), `"channel":"email"`)
	assert.Equal(t, []string{"a@b.com=123456"}, got)
}

func TestLocalIssuer(t *testing.T) {
	ctx := context.Background()
	box := &inbox{}
	l := NewLocalIssuer(NewSequenceGenerator("111111", "222222"), box)

	ok, err := l.Verify(ctx, "a@b.com", "111111")
	require.NoError(t, err)
	assert.False(t, ok, "nothing issued yet")

	require.NoError(t, l.Issue(ctx, "a@b.com"))
	assert.Equal(t, "111111", box.last())

	ok, _ = l.Verify(ctx, "a@b.com", "111111")
	assert.True(t, ok)
	ok, _ = l.Verify(ctx, "other@b.com", "111111")
	assert.False(t, ok)

	require.NoError(t, l.Issue(ctx, "a@b.com"))
	ok, _ = l.Verify(ctx, "a@b.com", "111111")
	assert.False(t, ok, "rotation invalidates the old code")
	ok, _ = l.Verify(ctx, "a@b.com", "222222")
	assert.True(t, ok)

	require.NoError(t, l.Revoke(ctx, "a@b.com"))
	ok, _ = l.Verify(ctx, "a@b.com", "222222")
	assert.False(t, ok)
}
