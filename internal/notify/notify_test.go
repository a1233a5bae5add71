package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront-server/internal/mocks"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/testutil"
)

func testNotice() model.PurchaseNotice {
	return model.PurchaseNotice{
		OrderID:     uuid.MustParse("6f1f0d43-52f6-4f1e-9d37-2f1f3f0c9a01"),
		Email:       "buyer@example.com",
		ProductName: "Guide <2nd edition>",
		DownloadURL: "https://shop.example.com/products/download/abc",
		PricePaid:   1999,
	}
}

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestQueuePublisher_NotifyPurchase(t *testing.T) {
	ch := &fakeChannel{}
	p := &QueuePublisher{channel: ch, queue: "purchase_notifications", logger: testutil.MakeNoopLogger()}

	require.NoError(t, p.NotifyPurchase(context.Background(), testNotice()))
	require.Len(t, ch.published, 1)

	msg := ch.published[0]
	assert.Equal(t, "purchase_notifications", ch.keys[0])
	assert.Equal(t, testNotice().OrderID.String(), msg.MessageId)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)

	var decoded model.PurchaseNotice
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, testNotice(), decoded)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestQueuePublisher_NotifyPurchase_Error(t *testing.T) {
	p := &QueuePublisher{channel: &fakeChannel{err: amqp.ErrClosed}, queue: "q", logger: testutil.MakeNoopLogger()}

	err := p.NotifyPurchase(context.Background(), testNotice())
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

type fakeEmails struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmails) Send(req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, req)
	return &resend.SendEmailResponse{Id: "email_1"}, nil
}

func TestMailer_NotifyPurchase(t *testing.T) {
	emails := &fakeEmails{}
	m := &Mailer{emails: emails, from: "Support <support@example.com>"}

	require.NoError(t, m.NotifyPurchase(context.Background(), testNotice()))
	require.Len(t, emails.sent, 1)

	req := emails.sent[0]
	assert.Equal(t, "Support <support@example.com>", req.From)
	assert.Equal(t, []string{"buyer@example.com"}, req.To)
	assert.Equal(t, "Your download verification code", req.Subject)
	assert.Contains(t, req.Html, `href="https://shop.example.com/products/download/abc"`)
	assert.Contains(t, req.Html, "Guide &lt;2nd edition&gt;")
}

func TestMailer_NotifyPurchase_Errors(t *testing.T) {
	t.Run("no recipient", func(t *testing.T) {
		m := &Mailer{emails: &fakeEmails{}, from: "x"}
		notice := testNotice()
		notice.Email = ""

		assert.Error(t, m.NotifyPurchase(context.Background(), notice))
	})

	t.Run("provider error", func(t *testing.T) {
		m := &Mailer{emails: &fakeEmails{err: errors.New("rate limited")}, from: "x"}

		assert.Error(t, m.NotifyPurchase(context.Background(), testNotice()))
	})
}

func TestConsumer_HandleMessage(t *testing.T) {
	body, err := json.Marshal(testNotice())
	require.NoError(t, err)

	t.Run("sends once", func(t *testing.T) {
		sender := mocks.NewNotifier(t)
		seen := mocks.NewIdempotencyStore(t)
		seen.On("Claim", mock.Anything, "msg-1", time.Hour).Return(true, nil).Once()
		seen.On("Claim", mock.Anything, "msg-1", time.Hour).Return(false, nil).Once()
		sender.On("NotifyPurchase", mock.Anything, testNotice()).Return(nil).Once()

		c := NewConsumer(sender, seen, time.Hour, testutil.MakeNoopLogger())

		require.NoError(t, c.HandleMessage(context.Background(), "msg-1", body))
		require.NoError(t, c.HandleMessage(context.Background(), "msg-1", body))
	})

	t.Run("failed send releases claim", func(t *testing.T) {
		sender := mocks.NewNotifier(t)
		seen := mocks.NewIdempotencyStore(t)
		seen.On("Claim", mock.Anything, "msg-2", DefaultDedupTTL).Return(true, nil)
		seen.On("Release", mock.Anything, "msg-2").Return(nil)
		sender.On("NotifyPurchase", mock.Anything, mock.Anything).Return(errors.New("provider down"))

		c := NewConsumer(sender, seen, 0, testutil.MakeNoopLogger())

		assert.Error(t, c.HandleMessage(context.Background(), "msg-2", body))
	})

	t.Run("falls back to order id", func(t *testing.T) {
		sender := mocks.NewNotifier(t)
		seen := mocks.NewIdempotencyStore(t)
		seen.On("Claim", mock.Anything, testNotice().OrderID.String(), mock.Anything).Return(true, nil)
		sender.On("NotifyPurchase", mock.Anything, mock.Anything).Return(nil)

		c := NewConsumer(sender, seen, time.Hour, testutil.MakeNoopLogger())

		assert.NoError(t, c.HandleMessage(context.Background(), "", body))
	})

	t.Run("malformed body", func(t *testing.T) {
		c := NewConsumer(mocks.NewNotifier(t), mocks.NewIdempotencyStore(t), time.Hour, testutil.MakeNoopLogger())

		err := c.HandleMessage(context.Background(), "msg-3", []byte("{"))
		assert.ErrorIs(t, err, errMalformedNotice)
	})
}

type fakeAcknowledger struct {
	acked    []uint64
	nacked   []uint64
	requeued []bool
}

func (f *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, _ bool, requeue bool) error {
	f.nacked = append(f.nacked, tag)
	f.requeued = append(f.requeued, requeue)
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func TestConsumer_Run(t *testing.T) {
	body, err := json.Marshal(testNotice())
	require.NoError(t, err)

	sender := mocks.NewNotifier(t)
	seen := mocks.NewIdempotencyStore(t)
	seen.On("Claim", mock.Anything, "ok", mock.Anything).Return(true, nil)
	seen.On("Claim", mock.Anything, "fail", mock.Anything).Return(false, errors.New("redis down"))
	sender.On("NotifyPurchase", mock.Anything, mock.Anything).Return(nil)

	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp.Delivery, 3)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, MessageId: "ok", Body: body}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, MessageId: "bad", Body: []byte("nope")}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, MessageId: "fail", Body: body}
	close(deliveries)

	c := NewConsumer(sender, seen, time.Hour, testutil.MakeNoopLogger()).WithRetryDelay(0)
	err = c.Run(context.Background(), deliveries)
	assert.Error(t, err)

	assert.Equal(t, []uint64{1}, ack.acked)
	assert.Equal(t, []uint64{2, 3}, ack.nacked)
	assert.Equal(t, []bool{false, true}, ack.requeued)
}

func TestConsumer_Run_RequeueBackoff(t *testing.T) {
	body, err := json.Marshal(testNotice())
	require.NoError(t, err)

	t.Run("waits before requeueing a failed send", func(t *testing.T) {
		sender := mocks.NewNotifier(t)
		seen := mocks.NewIdempotencyStore(t)
		seen.On("Claim", mock.Anything, "msg-1", mock.Anything).Return(true, nil)
		seen.On("Release", mock.Anything, "msg-1").Return(nil)
		sender.On("NotifyPurchase", mock.Anything, mock.Anything).Return(errors.New("provider down"))

		ack := &fakeAcknowledger{}
		deliveries := make(chan amqp.Delivery, 1)
		deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, MessageId: "msg-1", Body: body}
		close(deliveries)

		delay := 100 * time.Millisecond
		c := NewConsumer(sender, seen, time.Hour, testutil.MakeNoopLogger()).WithRetryDelay(delay)

		start := time.Now()
		assert.Error(t, c.Run(context.Background(), deliveries))

		assert.GreaterOrEqual(t, time.Since(start), delay)
		assert.Equal(t, []uint64{1}, ack.nacked)
		assert.Equal(t, []bool{true}, ack.requeued)
	})

	t.Run("cancellation cuts the wait short", func(t *testing.T) {
		seen := mocks.NewIdempotencyStore(t)
		seen.On("Claim", mock.Anything, "msg-2", mock.Anything).Return(false, errors.New("redis down"))

		ack := &fakeAcknowledger{}
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		c := NewConsumer(mocks.NewNotifier(t), seen, time.Hour, testutil.MakeNoopLogger()).WithRetryDelay(time.Hour)

		start := time.Now()
		c.handleDelivery(ctx, amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, MessageId: "msg-2", Body: body})

		assert.Less(t, time.Since(start), time.Minute)
		assert.Equal(t, []bool{true}, ack.requeued)
	})

	t.Run("malformed messages are dropped without waiting", func(t *testing.T) {
		ack := &fakeAcknowledger{}
		c := NewConsumer(mocks.NewNotifier(t), mocks.NewIdempotencyStore(t), time.Hour, testutil.MakeNoopLogger()).
			WithRetryDelay(time.Hour)

		start := time.Now()
		c.handleDelivery(context.Background(), amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: []byte("{")})

		assert.Less(t, time.Since(start), time.Minute)
		assert.Equal(t, []bool{false}, ack.requeued)
	})
}
