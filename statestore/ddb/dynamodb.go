/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	regerrors "github.com/suparena/addressregistry/errors"
	"github.com/suparena/addressregistry/storagemodels"
)

// Single-table layout: one item per entry keyed by address, with the
// id projected onto GSI1 for the reverse lookup, plus one counter item.
const (
	addressKeyPrefix = "ADDR#"
	idKeyPrefix      = "ID#"
	entrySortKey     = "ENTRY"
	counterPK        = "COUNTER"
	gsiName          = "GSI1"
)

// RegistryStore implements statestore.RegistryStore on AWS DynamoDB.
// The write-once guard and the counter advance are enforced with a
// conditional TransactWriteItems call, so a registration commits both
// items or neither.
type RegistryStore struct {
	client    *sdk.Client
	tableName string
	logger    *slog.Logger
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	// Load the custom AWS configuration using static credentials
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// NewRegistryStore constructs a RegistryStore backed by the given table.
func NewRegistryStore(awsAccessKey, awsSecretKey, awsRegion, tableName string, logger *slog.Logger) (*RegistryStore, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("registry store initialized", "table", tableName, "region", awsRegion)

	return &RegistryStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}, nil
}

// NewRegistryStoreWithClient constructs a RegistryStore around an
// existing client, which is useful for tests and local endpoints.
func NewRegistryStoreWithClient(client *sdk.Client, tableName string, logger *slog.Logger) *RegistryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistryStore{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// InitCounter writes the counter item if it does not exist yet.
func (d *RegistryStore) InitCounter(ctx context.Context, value string) error {
	now := strfmt.DateTime(time.Now().UTC())
	record := storagemodels.CounterRecord{Value: value, UpdatedAt: &now}
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal counter record: %w", err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: counterPK}
	av["SK"] = &types.AttributeValueMemberS{Value: counterPK}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &d.tableName,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already initialized; nothing to do.
			return nil
		}
		return fmt.Errorf("failed to initialize counter: %w", err)
	}
	d.logger.Info("counter initialized", "value", value)
	return nil
}

// PutEntry inserts the entry and advances the counter in one
// transaction. A duplicate address maps to ErrAlreadyRegistered and a
// stale expected counter to ErrBadCounterAssertion.
func (d *RegistryStore) PutEntry(ctx context.Context, entry storagemodels.RegistryEntry, expectedCounter string) error {
	av, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: addressKeyPrefix + entry.Address}
	av["SK"] = &types.AttributeValueMemberS{Value: entrySortKey}
	av["GSI1PK"] = &types.AttributeValueMemberS{Value: idKeyPrefix + entry.ID}
	av["GSI1SK"] = &types.AttributeValueMemberS{Value: entrySortKey}

	next, err := nextCounterValue(expectedCounter)
	if err != nil {
		return err
	}
	now := strfmt.DateTime(time.Now().UTC())

	_, err = d.client.TransactWriteItems(ctx, &sdk.TransactWriteItemsInput{
		// One token per invocation; retries of the same logical
		// registration must not be deduplicated into a silent success.
		ClientRequestToken: aws.String(uuid.NewString()),
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           &d.tableName,
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(PK)"),
				},
			},
			{
				Update: &types.Update{
					TableName: &d.tableName,
					Key: map[string]types.AttributeValue{
						"PK": &types.AttributeValueMemberS{Value: counterPK},
						"SK": &types.AttributeValueMemberS{Value: counterPK},
					},
					UpdateExpression:    aws.String("SET #v = :next, #u = :now"),
					ConditionExpression: aws.String("#v = :expected"),
					ExpressionAttributeNames: map[string]string{
						"#v": "Value",
						"#u": "UpdatedAt",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":next":     &types.AttributeValueMemberS{Value: next},
						":expected": &types.AttributeValueMemberS{Value: expectedCounter},
						":now":      &types.AttributeValueMemberS{Value: now.String()},
					},
				},
			},
		},
	})
	if err != nil {
		return d.mapPutError(ctx, err, entry, expectedCounter)
	}

	d.logger.Info("entry persisted", "address", entry.Address, "id", entry.ID)
	return nil
}

// mapPutError translates a cancelled transaction into the registry's
// error taxonomy by inspecting which condition failed.
func (d *RegistryStore) mapPutError(ctx context.Context, err error, entry storagemodels.RegistryEntry, expectedCounter string) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return fmt.Errorf("PutEntry transaction failed: %w", err)
	}
	reasons := tce.CancellationReasons
	if len(reasons) > 0 && reasons[0].Code != nil && *reasons[0].Code == "ConditionalCheckFailed" {
		return regerrors.NewAlreadyRegisteredError(entry.Address)
	}
	if len(reasons) > 1 && reasons[1].Code != nil && *reasons[1].Code == "ConditionalCheckFailed" {
		actual, readErr := d.Counter(ctx)
		if readErr != nil {
			actual = "unknown"
		}
		return regerrors.NewCounterAssertionError(expectedCounter, actual)
	}
	return fmt.Errorf("PutEntry transaction cancelled: %w", err)
}

// GetByAddress retrieves the entry for an address, or nil if absent.
func (d *RegistryStore) GetByAddress(ctx context.Context, address string) (*storagemodels.RegistryEntry, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: addressKeyPrefix + address},
			"SK": &types.AttributeValueMemberS{Value: entrySortKey},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	entry := new(storagemodels.RegistryEntry)
	if err := attributevalue.UnmarshalMap(out.Item, entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}
	return entry, nil
}

// Counter returns the persisted counter value.
func (d *RegistryStore) Counter(ctx context.Context) (string, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: counterPK},
			"SK": &types.AttributeValueMemberS{Value: counterPK},
		},
	})
	if err != nil {
		return "", fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return "", fmt.Errorf("counter record not initialized")
	}

	record := new(storagemodels.CounterRecord)
	if err := attributevalue.UnmarshalMap(out.Item, record); err != nil {
		return "", fmt.Errorf("failed to unmarshal counter record: %w", err)
	}
	return record.Value, nil
}

// nextCounterValue computes the decimal successor of a counter value.
func nextCounterValue(value string) (string, error) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("counter value %q is not a non-negative decimal integer", value)
	}
	return n.Add(n, big.NewInt(1)).String(), nil
}
