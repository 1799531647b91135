/*
Package ddb implements statestore.RegistryStore on AWS DynamoDB.

Single-table design, one table per registry instance:

	Entry item:   PK = "ADDR#<address>"  SK = "ENTRY"
	              GSI1PK = "ID#<id>"     GSI1SK = "ENTRY"
	Counter item: PK = "COUNTER"         SK = "COUNTER"

The id is projected onto GSI1 so that both directions of the bijection
resolve with a single keyed read. PutEntry writes the entry and
advances the counter in one TransactWriteItems call with two condition
expressions: attribute_not_exists on the entry's PK (the write-once
guard) and equality on the stored counter (the monotonic-assignment
guard). A cancelled transaction is translated back into the registry's
error taxonomy by inspecting which condition failed.

The table needs GSI1 defined with GSI1PK/GSI1SK as its key schema.
*/
package ddb
