/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/addressregistry/storagemodels"
)

// GetByID retrieves the entry for an id, or nil if absent. The id is
// not part of the table's primary key, so the lookup goes through the
// GSI1 projection maintained by PutEntry.
func (d *RegistryStore) GetByID(ctx context.Context, id string) (*storagemodels.RegistryEntry, error) {
	keyCond := "GSI1PK = :pk AND GSI1SK = :sk"
	out, err := d.client.Query(ctx, &sdk.QueryInput{
		TableName:              &d.tableName,
		IndexName:              aws.String(gsiName),
		KeyConditionExpression: &keyCond,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: idKeyPrefix + id},
			":sk": &types.AttributeValueMemberS{Value: entrySortKey},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("GetByID query error: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	entry := new(storagemodels.RegistryEntry)
	if err := attributevalue.UnmarshalMap(out.Items[0], entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}
	return entry, nil
}
