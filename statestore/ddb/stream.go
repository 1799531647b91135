/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/addressregistry/storagemodels"
)

// Stream emits every persisted entry by scanning the table page by
// page with retry on transient errors.
func (d *RegistryStore) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult, options.BufferSize)
	go d.streamWorker(ctx, options, resultCh)
	return resultCh
}

// streamWorker handles the actual streaming logic
func (d *RegistryStore) streamWorker(ctx context.Context, options storagemodels.StreamOptions, resultCh chan<- storagemodels.StreamResult) {
	defer close(resultCh)

	var itemIndex int64
	var pageNumber int

	input := &sdk.ScanInput{
		TableName:        &d.tableName,
		FilterExpression: aws.String("begins_with(PK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: addressKeyPrefix},
		},
		Limit: aws.Int32(options.PageSize),
	}

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := d.scanWithRetry(ctx, input, options)
		if err != nil {
			resultCh <- storagemodels.StreamResult{
				Error: fmt.Errorf("scan failed: %w", err),
				Meta: storagemodels.StreamMeta{
					Index:      itemIndex,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			return
		}

		pageNumber++

		for _, item := range out.Items {
			result := processItem(item, itemIndex, pageNumber)
			itemIndex++

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
}

// scanWithRetry executes a scan with configurable retry logic
func (d *RegistryStore) scanWithRetry(ctx context.Context, input *sdk.ScanInput, options storagemodels.StreamOptions) (*sdk.ScanOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := d.client.Scan(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < options.MaxRetries {
			// Linear backoff is enough for a startup hydration scan.
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("scan failed after %d retries: %w", options.MaxRetries, lastErr)
}

// processItem converts a DynamoDB item to an entry result
func processItem(item map[string]types.AttributeValue, index int64, pageNumber int) storagemodels.StreamResult {
	meta := storagemodels.StreamMeta{
		Index:      index,
		PageNumber: pageNumber,
		Timestamp:  time.Now(),
	}

	entry := new(storagemodels.RegistryEntry)
	if err := attributevalue.UnmarshalMap(item, entry); err != nil {
		return storagemodels.StreamResult{
			Error: fmt.Errorf("failed to unmarshal entry: %w", err),
			Meta:  meta,
		}
	}
	return storagemodels.StreamResult{
		Entry: entry,
		Meta:  meta,
	}
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	switch err.(type) {
	case *types.ProvisionedThroughputExceededException:
		return true
	case *types.RequestLimitExceeded:
		return true
	case *types.InternalServerError:
		return true
	}

	if awsErr, ok := err.(interface{ IsRetryable() bool }); ok {
		return awsErr.IsRetryable()
	}

	return false
}
