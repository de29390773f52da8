package mqhandler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mqcontracts "portfolio-admin/contracts/mq"
	"portfolio-admin/pkg/util"
)

type recordingInserter struct {
	kinds    []string
	messages []string
	err      error
}

func (r *recordingInserter) Insert(ctx context.Context, kind, message string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.kinds = append(r.kinds, kind)
	r.messages = append(r.messages, message)
	return int64(len(r.messages)), nil
}

// unreachableRedis returns a client whose commands fail immediately, so
// the deduper takes its fail-open path and lets every event through.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func newSubmittedHandler(t *testing.T, repo NotificationInserter) *TestimonialSubmittedHandler {
	t.Helper()
	rdb := unreachableRedis(t)
	return NewTestimonialSubmittedHandler(
		repo,
		util.NewDeduper(rdb, time.Hour, zap.NewNop()),
		util.NewRetryCounter(rdb, time.Hour),
		zap.NewNop(),
	)
}

func TestSubmittedHandlerInsertsNotification(t *testing.T) {
	repo := &recordingInserter{}
	h := newSubmittedHandler(t, repo)

	payload, err := json.Marshal(mqcontracts.TestimonialSubmittedPayload{
		TestimonialID: 12,
		Name:          "Ada",
		Company:       "Analytical Engines",
		SubmittedAt:   time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, h.Handle(context.Background(), payload))

	require.Len(t, repo.messages, 1)
	assert.Equal(t, "New testimonial from Ada (Analytical Engines) awaiting review", repo.messages[0])
}

func TestSubmittedHandlerWithoutCompany(t *testing.T) {
	repo := &recordingInserter{}
	h := newSubmittedHandler(t, repo)

	payload, _ := json.Marshal(mqcontracts.TestimonialSubmittedPayload{
		TestimonialID: 13,
		Name:          "Ada",
	})
	require.NoError(t, h.Handle(context.Background(), payload))

	require.Len(t, repo.messages, 1)
	assert.Equal(t, "New testimonial from Ada awaiting review", repo.messages[0])
}

func TestSubmittedHandlerDropsMalformedPayload(t *testing.T) {
	repo := &recordingInserter{}
	h := newSubmittedHandler(t, repo)

	err := h.Handle(context.Background(), json.RawMessage(`{not json`))
	assert.NoError(t, err)
	assert.Empty(t, repo.messages)
}

func TestApprovedHandlerInsertsNotification(t *testing.T) {
	repo := &recordingInserter{}
	rdb := unreachableRedis(t)
	h := NewTestimonialApprovedHandler(
		repo,
		util.NewDeduper(rdb, time.Hour, zap.NewNop()),
		util.NewRetryCounter(rdb, time.Hour),
		zap.NewNop(),
	)

	payload, _ := json.Marshal(mqcontracts.TestimonialApprovedPayload{
		TestimonialID: 12,
		Name:          "Ada",
		ApprovedAt:    time.Now(),
	})
	require.NoError(t, h.Handle(context.Background(), payload))

	require.Len(t, repo.messages, 1)
	assert.Equal(t, "Testimonial from Ada is now live on the site", repo.messages[0])
}
