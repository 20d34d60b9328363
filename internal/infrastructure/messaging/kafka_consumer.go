package messaging

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/Avinash-0612/fhir-healthcare-lakehouse/config"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// BundleHandler processes one raw bundle message pulled from the topic.
type BundleHandler func(ctx context.Context, key, value []byte) error

// KafkaBundleConsumer consumes FHIR bundle messages and hands them to the
// ingestion pipeline. Call Stop() during graceful shutdown.
type KafkaBundleConsumer struct {
	reader  *kafka.Reader
	handler BundleHandler
	log     *logrus.Logger

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

func NewKafkaBundleConsumer(cfg config.KafkaConfig, handler BundleHandler, log *logrus.Logger) *KafkaBundleConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})

	return &KafkaBundleConsumer{
		reader:  reader,
		handler: handler,
		log:     log,
	}
}

// Start launches the consume loop in a background goroutine.
func (c *KafkaBundleConsumer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.wg.Add(1)
	go c.consumeLoop(ctx)

	c.log.Infof("Kafka consumer started, topic=%s group=%s", c.reader.Config().Topic, c.reader.Config().GroupID)
}

// Stop cancels the consume loop and closes the reader.
// Safe to call multiple times.
func (c *KafkaBundleConsumer) Stop() {
	if c.stopped.CompareAndSwap(false, true) {
		if c.cancel != nil {
			c.cancel()
		}
		c.wg.Wait()
		if err := c.reader.Close(); err != nil {
			c.log.Warnf("Failed to close Kafka reader: %+v", err)
		}
		c.log.Info("Kafka consumer stopped")
	}
}

func (c *KafkaBundleConsumer) consumeLoop(ctx context.Context) {
	defer c.wg.Done()

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.log.Errorf("Could not read Kafka message: %+v", err)
			continue
		}

		c.log.Infof("Received Kafka message: key=%s, size=%d bytes", string(msg.Key), len(msg.Value))

		if err := c.handler(ctx, msg.Key, msg.Value); err != nil {
			// Failed bundles are logged and skipped; the message is already
			// committed by the group reader.
			c.log.Errorf("Failed to process bundle from Kafka: %+v", err)
		}
	}
}
