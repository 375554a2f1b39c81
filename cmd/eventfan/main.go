// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// eventfan fans a single event out to a configurable set of synthetic subscribers, waits on all
// of them, and reports every failure.  It is useful for observing fan-out behavior, logging, and
// metrics without wiring the event package into an application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xmidt-org/asyncevent/async"
	"github.com/xmidt-org/asyncevent/event"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitConfig  = 2
)

func newLogger(level string, output zapcore.WriteSyncer) (*zap.Logger, error) {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return zap.New(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			output,
			zap.NewAtomicLevelAt(l),
		),
	), nil
}

// newHandler builds the event handler with one synthetic subscriber per configured index
func newHandler(c Config) (*event.Handler[string], error) {
	fail, err := c.indexSet(c.Fail)
	if err != nil {
		return nil, err
	}

	panics, err := c.indexSet(c.Panic)
	if err != nil {
		return nil, err
	}

	h := event.NewHandler[string](applicationName)
	for i := 0; i < c.Subscribers; i++ {
		var (
			index = i
			delay = c.Delay * time.Duration(i+1)
		)

		h.Subscribe(func(payload string) *async.Result {
			return async.Go(func() error {
				time.Sleep(delay)
				switch {
				case panics[index]:
					panic(fmt.Sprintf("subscriber %d panicked on %q", index, payload))

				case fail[index]:
					return fmt.Errorf("subscriber %d rejected %q", index, payload)

				default:
					return nil
				}
			})
		})
	}

	return h, nil
}

// run performs one fan-out and waits on it, using the logger carried by the context.  The returned
// bool is false if the fan-out was still in progress when the timeout elapsed.
func run(ctx context.Context, c Config, inv *event.Invoker, h *event.Handler[string]) (int, bool) {
	logger := sallust.Get(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	err := event.Invoke(inv, h, c.Payload).Wait(ctx)
	switch {
	case err == nil:
		logger.Info("all subscribers succeeded", zap.Int(event.SubscriberCountKey(), h.Len()))
		return exitSuccess, true

	case err == ctx.Err():
		logger.Error("timed out waiting on subscribers", zap.Duration("timeout", c.Timeout))
		return exitFailure, false

	default:
		for _, e := range async.Errors(err) {
			logger.Error("subscriber failed", zap.Error(e))
		}

		return exitFailure, true
	}
}

func eventfan(arguments []string, stdout, stderr io.Writer) int {
	c, err := loadConfig(arguments)
	if err != nil {
		fmt.Fprintf(stderr, "Unable to load configuration: %s\n", err)
		return exitConfig
	}

	logger, err := newLogger(c.LogLevel, zapcore.AddSync(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "Unable to create logger: %s\n", err)
		return exitConfig
	}

	defer logger.Sync() //nolint:errcheck

	h, err := newHandler(c)
	if err != nil {
		logger.Error("unable to create subscribers", zap.Error(err))
		return exitConfig
	}

	var (
		r   = newRegistry(c.Namespace, c.Subsystem)
		inv = event.NewInvoker(
			event.WithLogger(logger),
			event.WithProvider(r),
		)
	)

	status, completed := run(sallust.With(context.Background(), logger), c, inv, h)
	if completed {
		// the invoker reports outcomes asynchronously
		inv.Wait()
	}

	if c.Metrics {
		if err := r.writeText(stdout); err != nil {
			logger.Error("unable to write metrics", zap.Error(err))
			return exitFailure
		}
	}

	return status
}

func main() {
	os.Exit(eventfan(os.Args[1:], os.Stdout, os.Stderr))
}
