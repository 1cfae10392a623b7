package resolver

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	t     time.Time
	err   error
	calls int
}

func (p *stubParser) Parse(string) (time.Time, error) {
	p.calls++
	return p.t, p.err
}

func TestResolve_NoArgsIsNow(t *testing.T) {
	in, err := New(nil).Resolve(nil)
	require.NoError(t, err)
	assert.True(t, in.IsNow())
}

func TestResolve_NullAndAbsentAreNow(t *testing.T) {
	r := New(nil)
	for _, arg := range []Arg{NullArg(), AbsentArg()} {
		in, err := r.Resolve([]Arg{arg})
		require.NoError(t, err, arg.Kind().String())
		assert.True(t, in.IsNow(), arg.Kind().String())
	}
}

func TestResolve_WrongArity(t *testing.T) {
	p := &stubParser{}
	r := New(p)

	tests := []struct {
		args []Arg
		want string
	}{
		{[]Arg{NullArg(), NullArg()}, "expected 0 or 1 argument; got 2"},
		{[]Arg{ValueArg("2020-01-01"), ValueArg("x"), NullArg()}, "expected 0 or 1 argument; got 3"},
	}
	for _, tt := range tests {
		_, err := r.Resolve(tt.args)
		require.Error(t, err)
		assert.EqualError(t, err, tt.want)

		var arity *WrongArityError
		require.True(t, errors.As(err, &arity))
		assert.Equal(t, len(tt.args), arity.Got)
	}
	assert.Zero(t, p.calls, "arguments must not be inspected when arity is wrong")
}

func TestResolve_Unparseable(t *testing.T) {
	r := New(nil)
	for _, in := range []string{"not-a-date", "12:", "1/", "1:2:3", "1.1.1.1", "0000"} {
		t.Run(in, func(t *testing.T) {
			_, err := r.Resolve([]Arg{ValueArg(in)})
			require.ErrorIs(t, err, ErrUnparseableDate)
			assert.EqualError(t, err, "unable to parse date format")
		})
	}
}

func TestDateparseParser_RejectsYearlessInput(t *testing.T) {
	p := DefaultDateParser()
	for _, in := range []string{"12:", "1/", "1:2:3"} {
		_, err := p.Parse(in)
		assert.Error(t, err, in)
	}

	got, err := p.Parse("1983-04-13")
	require.NoError(t, err)
	assert.Equal(t, 1983, got.Year())
}

func TestResolve_EmptyStringIsUnparseable(t *testing.T) {
	_, err := New(nil).Resolve([]Arg{ValueArg("")})
	assert.ErrorIs(t, err, ErrUnparseableDate)
}

func TestResolve_ParserFailureIsUnparseable(t *testing.T) {
	_, err := New(&stubParser{err: errors.New("boom")}).Resolve([]Arg{ValueArg("whatever")})
	assert.ErrorIs(t, err, ErrUnparseableDate)
}

func TestResolve_TruncatesToMillisecond(t *testing.T) {
	p := &stubParser{t: time.Date(2021, 6, 1, 10, 0, 0, 123_999_999, time.UTC)}
	in, err := New(p).Resolve([]Arg{ValueArg("x")})
	require.NoError(t, err)
	assert.False(t, in.IsNow())
	assert.Equal(t, int64(123), in.Time(nil).UnixMilli()%1000)
	assert.Equal(t, 123_000_000, in.Time(nil).Nanosecond())
}

func TestResolve_ConcreteDate(t *testing.T) {
	in, err := New(nil).Resolve([]Arg{ValueArg("1983-04-13 12:09:14.274")})
	require.NoError(t, err)

	want := time.Date(1983, 4, 13, 12, 9, 14, 274_000_000, time.UTC)
	assert.Equal(t, want.Unix(), in.Time(nil).Unix())
	assert.Equal(t, want.UnixMilli(), in.Time(nil).UnixMilli())
}

func TestResolve_CommonFormats(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2009-08-12T22:15:09Z", time.Date(2009, 8, 12, 22, 15, 9, 0, time.UTC)},
		{"2014-04-26 17:24:37.123", time.Date(2014, 4, 26, 17, 24, 37, 123_000_000, time.UTC)},
		{"2006-01-02T15:04:05+0000", time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)},
		{"May 8, 2009 5:57:51 PM", time.Date(2009, 5, 8, 17, 57, 51, 0, time.UTC)},
		{"  2020-02-29  ", time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"1332151919", time.Unix(1332151919, 0)},
	}

	r := New(nil)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			in, err := r.Resolve([]Arg{ValueArg(tt.in)})
			require.NoError(t, err)
			assert.Equal(t, tt.want.Unix(), in.Time(nil).Unix())
		})
	}
}

func TestDateparseParser_Location(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	p := DateparseParser{Location: loc, PreferMonthFirst: true}

	got, err := p.Parse("2020-01-01 02:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Unix(), got.Unix())
}

func TestInstant_NowUsesClock(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 999_999, time.UTC)
	got := Now().Time(func() time.Time { return fixed })
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "now", Now().String())
}

func TestArg_Value(t *testing.T) {
	v, ok := ValueArg("2020-01-01").Value()
	assert.True(t, ok)
	assert.Equal(t, "2020-01-01", v)

	_, ok = NullArg().Value()
	assert.False(t, ok)
	assert.Equal(t, "null", NullArg().Kind().String())
}
