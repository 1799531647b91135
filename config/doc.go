/*
Package config loads deployment configuration for a registry instance.

Configuration splits along sensitivity: the YAML file carries the
deployment shape (registry address, initial counter, DynamoDB table
and region, log settings) while AWS credentials come from the
environment, optionally via a .env file.

	registry:
	  address: KT1RegistryDeploymentAddressAAAAAAAA
	  initialCounter: "0"
	aws:
	  region: us-east-1
	  table: address-registry
	log:
	  level: info
	  format: text
*/
package config
