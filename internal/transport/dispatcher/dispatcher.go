// Package dispatcher повторно ставит задачи выдачи для оплаченных заказов, по которым постановка после
// коммита колбэка не удалась.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/ppob-ledger/internal/domain"
	"github.com/fsdevblog/ppob-ledger/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultEnqueueTimeout         = 5 * time.Second
	defaultLimitPerIteration uint = 100
	defaultWorkers           uint = 5
	defaultInterval               = 30 * time.Second
	defaultGrace                  = time.Minute
)

// Dispatcher фоновый цикл повторной постановки задач выдачи.
type Dispatcher struct {
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	interval          time.Duration
	grace             time.Duration
}

func New(svs Servicer, l *logrus.Logger) *Dispatcher {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "fulfillment",
		"module":    "dispatcher",
	})

	return &Dispatcher{
		svs:               svs,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
		interval:          defaultInterval,
		grace:             defaultGrace,
	}
}

// SetLimitPerIteration устанавливает кол-во заказов, обрабатываемых в одной итерации.
func (d *Dispatcher) SetLimitPerIteration(limit uint) *Dispatcher {
	d.limitPerIteration = limit
	return d
}

// SetWorkers устанавливает кол-во воркеров, ставящих задачи.
func (d *Dispatcher) SetWorkers(workers uint) *Dispatcher {
	if workers > 0 {
		d.workers = workers
	}
	return d
}

// SetInterval пауза между итерациями, когда заказов для постановки нет.
func (d *Dispatcher) SetInterval(interval time.Duration) *Dispatcher {
	if interval > 0 {
		d.interval = interval
	}
	return d
}

// SetGrace время после оплаты, в течение которого заказ не трогается: задачу еще может поставить
// обработчик колбэка.
func (d *Dispatcher) SetGrace(grace time.Duration) *Dispatcher {
	d.grace = grace
	return d
}

// Run запускает обработку в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации запрашивает через сервисный слой оплаченные заказы без поставленной задачи.
//  2. Раздает их N воркерам, каждый ставит задачу выдачи.
//  3. Успешно поставленные заказы отмечаются через сервисный слой. Неудачные остаются до следующей итерации.
//
// Если итерация поставила полный лимит задач, следующая начинается сразу, иначе после паузы. Пока очередь
// недоступна, постановки не проходят и цикл ждет интервал.
func (d *Dispatcher) Run(ctx context.Context) {
	d.l.WithFields(logrus.Fields{
		"limitPerIteration": d.limitPerIteration,
		"workers":           d.workers,
		"interval":          d.interval,
		"grace":             d.grace,
	}).Info("Starting")

	for {
		n, err := d.process(ctx)
		if err != nil && !errors.Is(err, ErrNoOrders) && !errors.Is(err, context.Canceled) {
			d.l.WithError(err).Error("process error")
		}

		pause := jitterDuration(d.interval)
		if err == nil && n >= d.limitPerIteration {
			pause = 0
		}

		select {
		case <-ctx.Done():
			d.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(pause):
		}
	}
}

// process выполняет одну итерацию и возвращает кол-во поставленных задач. Возвращает ErrNoOrders, если
// заказов для постановки нет.
func (d *Dispatcher) process(ctx context.Context) (uint, error) {
	orders, ordersErr := d.produce(ctx)
	if ordersErr != nil {
		return 0, fmt.Errorf("process: %w", ordersErr)
	}

	enqueued := d.runWorkers(ctx, orders)
	metrics.FulfillmentRedispatchedTotal.Add(float64(len(enqueued)))

	if len(enqueued) > 0 {
		markCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
		defer cancel()
		if err := d.svs.MarkEnqueued(markCtx, enqueued); err != nil {
			return uint(len(enqueued)), fmt.Errorf("process: %w", err)
		}
	}
	return uint(len(enqueued)), nil
}

// produce получает список заказов для повторной постановки.
func (d *Dispatcher) produce(ctx context.Context) ([]domain.Order, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	orders, ordersErr := d.svs.PendingFulfillment(produceCtx, d.limitPerIteration, d.grace)
	if ordersErr != nil {
		return nil, fmt.Errorf("produce: %w", ordersErr)
	}
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	return orders, nil
}

type workerResult struct {
	WorkerID uint
	Order    *domain.Order
	Error    error
}

// runWorkers раздает заказы воркерам (fan-out), собирает результаты (fan-in) и возвращает id заказов,
// задачи которых поставлены.
func (d *Dispatcher) runWorkers(ctx context.Context, orders []domain.Order) []int64 {
	taskCh := make(chan *domain.Order, len(orders))
	for i := range orders {
		taskCh <- &orders[i]
	}
	close(taskCh)

	workers := min(d.workers, uint(len(orders)))
	resultCh := make(chan *workerResult, len(orders))

	wg := new(sync.WaitGroup)
	wg.Add(int(workers)) // nolint:gosec
	for i := range workers {
		go d.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	enqueued := make([]int64, 0, len(orders))
	for result := range resultCh {
		l := d.l.WithFields(logrus.Fields{
			"worker":  result.WorkerID,
			"orderID": result.Order.OrderID,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("redispatch fulfillment")
			continue
		}
		l.Info("fulfillment redispatched")
		enqueued = append(enqueued, result.Order.ID)
	}
	return enqueued
}

func (d *Dispatcher) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Order,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			enqCtx, cancel := context.WithTimeout(ctx, defaultEnqueueTimeout)
			err := d.svs.Enqueue(enqCtx, task.OrderID)
			cancel()
			resultCh <- &workerResult{WorkerID: workerID, Order: task, Error: err}
		}
	}
}
