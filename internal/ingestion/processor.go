package ingestion

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"fleet-telematics-monitor/internal/domain/telemetry"
	"fleet-telematics-monitor/internal/logger"
)

// Processor buffers incoming telemetry messages and persists them in
// batches. Events are insert-only; trips are upserted because the provider
// republishes them as they progress.
type Processor struct {
	repo telemetry.Repository

	eventBuffer []telemetry.Event
	tripBuffer  []telemetry.Trip

	batchSize    int
	batchTimeout time.Duration
	workerCount  int
	bufferSize   int

	eventChan chan *EventMessage
	tripChan  chan *TripMessage

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex

	metrics *MetricsTracker
}

// NewProcessor creates a new telemetry processor.
func NewProcessor(repo telemetry.Repository, batchSize, workerCount, bufferSize int, batchTimeout time.Duration) *Processor {
	ctx, cancel := context.WithCancel(context.Background())

	return &Processor{
		repo:         repo,
		batchSize:    batchSize,
		batchTimeout: batchTimeout,
		workerCount:  workerCount,
		bufferSize:   bufferSize,
		eventBuffer:  make([]telemetry.Event, 0, batchSize),
		tripBuffer:   make([]telemetry.Trip, 0, batchSize),
		eventChan:    make(chan *EventMessage, bufferSize),
		tripChan:     make(chan *TripMessage, bufferSize),
		ctx:          ctx,
		cancel:       cancel,
		metrics:      NewMetricsTracker(),
	}
}

// Start starts the processor workers.
func (p *Processor) Start() {
	logger.Info("Starting ingestion processor",
		zap.Int("workers", p.workerCount),
		zap.Int("batch_size", p.batchSize),
		zap.Duration("batch_timeout", p.batchTimeout),
	)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.eventWorker(i)
	}

	p.wg.Add(1)
	go p.tripWorker()

	p.wg.Add(1)
	go p.batchFlusher()
}

// Stop stops the processor and flushes buffered records.
func (p *Processor) Stop() {
	logger.Info("Stopping ingestion processor")

	p.cancel()
	close(p.eventChan)
	close(p.tripChan)
	p.wg.Wait()

	p.flushEvents()
	p.flushTrips()
}

// ProcessEvent queues an event message for processing.
func (p *Processor) ProcessEvent(msg *EventMessage) {
	if err := ValidateEventMessage(msg); err != nil {
		logger.Warn("Invalid event message", zap.Error(err))
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesFailed++
		})
		return
	}

	select {
	case p.eventChan <- msg:
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesReceived++
			m.BufferSize = len(p.eventChan)
		})
	case <-p.ctx.Done():
		return
	default:
		logger.Warn("Event buffer full, dropping message",
			zap.String("device_serial", msg.DeviceSerial),
		)
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesFailed++
		})
	}
}

// ProcessTrip queues a trip message for processing.
func (p *Processor) ProcessTrip(msg *TripMessage) {
	if err := ValidateTripMessage(msg); err != nil {
		logger.Warn("Invalid trip message", zap.Error(err))
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesFailed++
		})
		return
	}

	select {
	case p.tripChan <- msg:
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesReceived++
		})
	case <-p.ctx.Done():
		return
	default:
		logger.Warn("Trip buffer full, dropping message",
			zap.String("device_serial", msg.DeviceSerial),
		)
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesFailed++
		})
	}
}

func (p *Processor) eventWorker(id int) {
	defer p.wg.Done()

	for {
		select {
		case msg, ok := <-p.eventChan:
			if !ok {
				return
			}

			start := time.Now()
			p.bufferEvent(msg)
			p.metrics.Update(func(m *IngestMetrics) {
				m.MessagesProcessed++
				m.LastProcessedAt = time.Now()

				processingTime := time.Since(start)
				if m.AverageProcessingTime == 0 {
					m.AverageProcessingTime = processingTime
				} else {
					m.AverageProcessingTime = (m.AverageProcessingTime + processingTime) / 2
				}
			})

		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Processor) tripWorker() {
	defer p.wg.Done()

	for {
		select {
		case msg, ok := <-p.tripChan:
			if !ok {
				return
			}

			p.mu.Lock()
			p.tripBuffer = append(p.tripBuffer, msg.toEntity())
			shouldFlush := len(p.tripBuffer) >= p.batchSize
			p.mu.Unlock()

			if shouldFlush {
				p.flushTrips()
			}

			p.metrics.Update(func(m *IngestMetrics) {
				m.MessagesProcessed++
			})

		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Processor) bufferEvent(msg *EventMessage) {
	p.mu.Lock()
	p.eventBuffer = append(p.eventBuffer, msg.toEntity())
	shouldFlush := len(p.eventBuffer) >= p.batchSize
	p.mu.Unlock()

	if shouldFlush {
		p.flushEvents()
	}
}

func (p *Processor) batchFlusher() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.batchTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.flushEvents()
			p.flushTrips()
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Processor) flushEvents() {
	p.mu.Lock()
	if len(p.eventBuffer) == 0 {
		p.mu.Unlock()
		return
	}

	batch := make([]telemetry.Event, len(p.eventBuffer))
	copy(batch, p.eventBuffer)
	p.eventBuffer = p.eventBuffer[:0]
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.repo.SaveEvents(ctx, batch); err != nil {
		logger.Error("Failed to insert event batch",
			zap.Int("batch_size", len(batch)),
			zap.Error(err),
		)
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesFailed += int64(len(batch))
		})
		return
	}

	p.metrics.Update(func(m *IngestMetrics) {
		m.EventsInserted += int64(len(batch))
	})
}

func (p *Processor) flushTrips() {
	p.mu.Lock()
	if len(p.tripBuffer) == 0 {
		p.mu.Unlock()
		return
	}

	batch := make([]telemetry.Trip, len(p.tripBuffer))
	copy(batch, p.tripBuffer)
	p.tripBuffer = p.tripBuffer[:0]
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.repo.SaveTrips(ctx, batch); err != nil {
		logger.Error("Failed to upsert trip batch",
			zap.Int("batch_size", len(batch)),
			zap.Error(err),
		)
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesFailed += int64(len(batch))
		})
		return
	}

	p.metrics.Update(func(m *IngestMetrics) {
		m.TripsUpserted += int64(len(batch))
	})
}

// GetMetrics returns current metrics.
func (p *Processor) GetMetrics() IngestMetrics {
	return p.metrics.Snapshot()
}
