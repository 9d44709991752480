package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// OperationDurationMetric tracks catalog operation duration (OpenTelemetry-compatible).
	OperationDurationMetric = "catalog_operation_duration_seconds"

	// OperationsMetric tracks total catalog operation calls.
	OperationsMetric = "catalog_operations_total"

	// ErrorsMetric tracks failed or rejected catalog operations.
	ErrorsMetric = "catalog_errors_total"

	// BooksLentMetric is the number of lent books after the last mutation.
	BooksLentMetric = "catalog_books_lent"

	// BooksAvailableMetric is the number of available books after the last mutation.
	BooksAvailableMetric = "catalog_books_available"

	// StatusSuccess indicates a successful operation.
	StatusSuccess = "success"

	// StatusError indicates a failed operation.
	StatusError = "error"

	// StatusRejected indicates an operation that was refused by a business rule without changing state.
	StatusRejected = "rejected"

	// ErrorTypeInvalidArgument classifies ErrInvalidArgument.
	ErrorTypeInvalidArgument = "invalid_argument"

	// ErrorTypeBookNotFound classifies ErrBookNotFound.
	ErrorTypeBookNotFound = "book_not_found"

	// ErrorTypeAlreadyLent classifies ErrAlreadyLent.
	ErrorTypeAlreadyLent = "already_lent"

	// ErrorTypeNotLent classifies ErrNotLent.
	ErrorTypeNotLent = "not_lent"

	// ErrorTypeDuplicateBook classifies ErrDuplicateBook.
	ErrorTypeDuplicateBook = "duplicate_book"

	// ErrorTypeOther classifies any other error.
	ErrorTypeOther = "other"

	operationAdd     = "add"
	operationRemove  = "remove"
	operationLend    = "lend"
	operationRetract = "retract"
	operationFind    = "find"

	spanNamePrefix = "catalog."

	logMsgOperation     = "catalog operation: "
	logMsgLendRejected  = "lending book failed"
	logMsgOperationFail = "catalog operation failed: "
	logAttrError        = "error"
	logAttrErrorType    = "error_type"
	logAttrBorrowerID   = "borrower_id"
	logAttrBorrowerName = "borrower_name"
	logAttrDurationMS   = "duration_ms"
	logAttrBookCount    = "book_count"

	labelOperation = "operation"
	labelStatus    = "status"
	labelErrorType = "error_type"
)

// ClassifyError maps catalog errors to a stable error type label.
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrorTypeInvalidArgument
	case errors.Is(err, ErrBookNotFound):
		return ErrorTypeBookNotFound
	case errors.Is(err, ErrAlreadyLent):
		return ErrorTypeAlreadyLent
	case errors.Is(err, ErrNotLent):
		return ErrorTypeNotLent
	case errors.Is(err, ErrDuplicateBook):
		return ErrorTypeDuplicateBook
	default:
		return ErrorTypeOther
	}
}

// operationObserver wraps one catalog operation with a span, timing, metrics, and logging.
type operationObserver struct {
	c         *Catalog
	ctx       context.Context
	operation string
	span      SpanContext
	start     time.Time
}

// startOperation creates an observer and starts the tracing span if tracing is configured.
func (c *Catalog) startOperation(
	ctx context.Context,
	operation string,
	attrs map[string]string,
) (*operationObserver, context.Context) {

	spanAttrs := map[string]string{labelOperation: operation}
	for key, value := range attrs {
		spanAttrs[key] = value
	}

	var span SpanContext
	if c.tracingCollector != nil {
		ctx, span = c.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, spanAttrs)
	}

	return &operationObserver{
		c:         c,
		ctx:       ctx,
		operation: operation,
		span:      span,
		start:     time.Now(),
	}, ctx
}

// finishSuccess completes a successful operation and logs it at the info level with the given args.
func (o *operationObserver) finishSuccess(args ...any) {
	duration := time.Since(o.start)

	o.recordCallMetrics(StatusSuccess, duration)
	o.finishSpan(StatusSuccess, nil)

	allArgs := []any{logAttrDurationMS, toMilliseconds(duration)}
	allArgs = append(allArgs, args...)
	o.c.logInfo(o.ctx, logMsgOperation+o.operation, allArgs...)
}

// finishRejected completes an operation refused by a business rule and logs it at the warn level.
func (o *operationObserver) finishRejected(err error, args ...any) {
	duration := time.Since(o.start)
	errorType := ClassifyError(err)

	o.recordCallMetrics(StatusRejected, duration)
	o.recordErrorMetric(errorType)
	o.finishSpan(StatusRejected, map[string]string{labelErrorType: errorType})

	allArgs := []any{logAttrError, err.Error(), logAttrErrorType, errorType}
	allArgs = append(allArgs, args...)
	o.c.logWarn(o.ctx, logMsgLendRejected, allArgs...)
}

// finishError completes a failed operation and logs it at the error level.
func (o *operationObserver) finishError(err error, args ...any) {
	duration := time.Since(o.start)
	errorType := ClassifyError(err)

	o.recordCallMetrics(StatusError, duration)
	o.recordErrorMetric(errorType)
	o.finishSpan(StatusError, map[string]string{labelErrorType: errorType})

	allArgs := []any{logAttrError, err.Error(), logAttrErrorType, errorType}
	allArgs = append(allArgs, args...)
	o.c.logError(o.ctx, logMsgOperationFail+o.operation, allArgs...)
}

func (o *operationObserver) finishSpan(status string, attrs map[string]string) {
	if o.c.tracingCollector == nil || o.span == nil {
		return
	}

	o.span.AddAttribute(logAttrDurationMS, fmt.Sprintf("%.2f", toMilliseconds(time.Since(o.start))))
	o.c.tracingCollector.FinishSpan(o.span, status, attrs)
}

func (o *operationObserver) recordCallMetrics(status string, duration time.Duration) {
	if o.c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation: o.operation,
		labelStatus:    status,
	}

	if contextual, ok := o.c.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(o.ctx, OperationDurationMetric, duration, labels)
		contextual.IncrementCounterContext(o.ctx, OperationsMetric, labels)

		return
	}

	o.c.metricsCollector.RecordDuration(OperationDurationMetric, duration, labels)
	o.c.metricsCollector.IncrementCounter(OperationsMetric, labels)
}

func (o *operationObserver) recordErrorMetric(errorType string) {
	if o.c.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		labelOperation: o.operation,
		labelErrorType: errorType,
	}

	if contextual, ok := o.c.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(o.ctx, ErrorsMetric, labels)

		return
	}

	o.c.metricsCollector.IncrementCounter(ErrorsMetric, labels)
}

// recordLendingGauges publishes the lent and available counts. The caller must hold the lock.
func (c *Catalog) recordLendingGauges(ctx context.Context) {
	if c.metricsCollector == nil {
		return
	}

	lent := c.countLent()
	available := len(c.books) - lent

	if contextual, ok := c.metricsCollector.(ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, BooksLentMetric, float64(lent), nil)
		contextual.RecordValueContext(ctx, BooksAvailableMetric, float64(available), nil)

		return
	}

	c.metricsCollector.RecordValue(BooksLentMetric, float64(lent), nil)
	c.metricsCollector.RecordValue(BooksAvailableMetric, float64(available), nil)
}

func (c *Catalog) logDebug(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.DebugContext(ctx, msg, args...)
	} else if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Catalog) logInfo(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.InfoContext(ctx, msg, args...)
	} else if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}

func (c *Catalog) logWarn(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.WarnContext(ctx, msg, args...)
	} else if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *Catalog) logError(ctx context.Context, msg string, args ...any) {
	if c.contextualLogger != nil {
		c.contextualLogger.ErrorContext(ctx, msg, args...)
	} else if c.logger != nil {
		c.logger.Error(msg, args...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
