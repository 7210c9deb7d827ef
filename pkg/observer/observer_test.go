package observer

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/invincible-jha/aumai-chaos/pkg/cerrors"
)

func TestRecordAndSnapshot(t *testing.T) {
	obsLog := NewLog()
	obsLog.Record("database", "query_start", nil)
	obsLog.Record("database", "query_end", map[string]interface{}{"rows": 3})

	snapshot := obsLog.Snapshot()
	assert.Len(t, snapshot, 2)
	assert.Equal(t, "database", snapshot[0].Target)
	assert.Equal(t, "query_start", snapshot[0].Event)
	assert.Equal(t, 3, snapshot[1].Details["rows"])
	assert.Equal(t, time.UTC, snapshot[0].Timestamp.Location())

	// the snapshot is an independent copy
	obsLog.Record("database", "query_start", nil)
	assert.Len(t, snapshot, 2)
}

func TestClear(t *testing.T) {
	obsLog := NewLog()
	obsLog.Record("cache", "evicted", nil)
	obsLog.Clear()
	assert.Empty(t, obsLog.Snapshot())
}

func TestConcurrentRecordAndSnapshot(t *testing.T) {
	obsLog := NewLog()
	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				obsLog.Record("worker", "tick", nil)
				_ = obsLog.Snapshot()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, obsLog.Snapshot(), 800)
}

func TestScopedRecordsStartAndEnd(t *testing.T) {
	obsLog := NewLog()
	err := obsLog.Scoped("database", "query", func() error { return nil })
	assert.NoError(t, err)

	snapshot := obsLog.Snapshot()
	assert.Len(t, snapshot, 2)
	assert.Equal(t, "query_start", snapshot[0].Event)
	assert.Equal(t, "query_end", snapshot[1].Event)
}

func TestScopedEmptyPrefix(t *testing.T) {
	obsLog := NewLog()
	_ = obsLog.Scoped("database", "", func() error { return nil })

	snapshot := obsLog.Snapshot()
	assert.Equal(t, "start", snapshot[0].Event)
	assert.Equal(t, "end", snapshot[1].Event)
}

func TestScopedPropagatesFailureUnchanged(t *testing.T) {
	obsLog := NewLog()
	boom := cerrors.Fault{Code: 503, Message: "x"}
	err := obsLog.Scoped("tool_call", "invoke", func() error { return boom })
	assert.Equal(t, boom, err)

	snapshot := obsLog.Snapshot()
	assert.Len(t, snapshot, 2)
	assert.Equal(t, "invoke_start", snapshot[0].Event)
	assert.Equal(t, "invoke_error", snapshot[1].Event)
	assert.Equal(t, string(cerrors.ErrorTypeFault), snapshot[1].Details["error_type"])
	assert.Equal(t, "[503] x", snapshot[1].Details["message"])
}

func TestScopedNonFriendlyError(t *testing.T) {
	obsLog := NewLog()
	boom := errors.New("plain failure")
	err := obsLog.Scoped("tool_call", "invoke", func() error { return boom })
	assert.Equal(t, boom, err)

	snapshot := obsLog.Snapshot()
	assert.Equal(t, string(cerrors.ErrorTypeNonUserFriendly), snapshot[1].Details["error_type"])
}
