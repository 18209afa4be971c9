package replace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestPageDefaults(t *testing.T) {
	assert.Equal(t, 1, Request{}.page())
	assert.Equal(t, 1, Request{Page: -3}.page())
	assert.Equal(t, 7, Request{Page: 7}.page())
}

func TestReportCounting(t *testing.T) {
	var rep Report
	rep.add(Result{Status: StatusInserted})
	rep.add(Result{Status: StatusRedacted}) // pure redaction success
	rep.add(Result{Status: StatusUnmatched})
	rep.add(Result{Status: StatusInsertFailed})
	rep.add(Result{Status: StatusMatched}) // redaction itself failed

	assert.Equal(t, 2, rep.Applied)
	assert.Equal(t, 1, rep.Unmatched)
	assert.Equal(t, 2, rep.Failed)
	assert.False(t, rep.Succeeded())
}

func TestReportSucceeded(t *testing.T) {
	var rep Report
	rep.add(Result{Status: StatusInserted})
	assert.True(t, rep.Succeeded())
}

func TestErrorWrapping(t *testing.T) {
	err := newError("apply", ErrNoMatch, "page 3")

	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Contains(t, err.Error(), "apply")
	assert.Contains(t, err.Error(), "page 3")

	var re *Error
	assert.True(t, errors.As(err, &re))
	assert.Equal(t, "apply", re.Op)
}
