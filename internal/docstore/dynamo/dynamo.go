// Package dynamo stores documents in Amazon DynamoDB. Every collection
// is a table with a string hash key named ID.
package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	awscreds "github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/nikmy/menuseed/internal/credentials"
	"github.com/nikmy/menuseed/internal/docstore"
	"github.com/nikmy/menuseed/pkg/errors"
	"github.com/nikmy/menuseed/pkg/logger"
)

const keyAttribute = "ID"

type Config struct {
	Region      string `yaml:"region"`
	Endpoint    string `yaml:"endpoint"`
	TablePrefix string `yaml:"tablePrefix"`
}

type secrets struct {
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	SessionToken    string `json:"session_token"`
}

func Dialer(cfg Config, log logger.Logger) docstore.Dialer {
	return func(_ context.Context, creds credentials.Credentials) (docstore.Store, error) {
		var s secrets
		err := creds.Decode(&s)
		if err != nil {
			return nil, err
		}

		awsSession, err := session.NewSession(awsConfig(cfg, s))
		if err != nil {
			return nil, errors.WrapFail(err, "create aws session")
		}

		return &manager{
			dbs:    dynamodb.New(awsSession),
			prefix: cfg.TablePrefix,
			log:    log.With("dynamo_store"),
		}, nil
	}
}

func awsConfig(cfg Config, s secrets) *aws.Config {
	c := &aws.Config{Region: aws.String(cfg.Region)}

	if s.Region != "" {
		c.Region = aws.String(s.Region)
	}

	endpoint := cfg.Endpoint
	if s.Endpoint != "" {
		endpoint = s.Endpoint
	}
	if endpoint != "" {
		c.Endpoint = aws.String(endpoint)
	}

	// Without static keys the default provider chain applies.
	if s.AccessKeyID != "" {
		c.Credentials = awscreds.NewStaticCredentials(s.AccessKeyID, s.SecretAccessKey, s.SessionToken)
	}

	return c
}

type manager struct {
	dbs    *dynamodb.DynamoDB
	prefix string
	log    logger.Logger
}

func (m *manager) table(collection string) *string {
	return aws.String(m.prefix + collection)
}

func itemKey(key string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		keyAttribute: {S: aws.String(key)},
	}
}

func toItem(key string, doc docstore.Document) (map[string]*dynamodb.AttributeValue, error) {
	item, err := dynamodbattribute.MarshalMap(doc)
	if err != nil {
		return nil, errors.WrapFail(err, "marshal document")
	}

	item[keyAttribute] = &dynamodb.AttributeValue{S: aws.String(key)}
	return item, nil
}

func fromItem(item map[string]*dynamodb.AttributeValue) (docstore.Document, error) {
	var doc docstore.Document

	err := dynamodbattribute.UnmarshalMap(item, &doc)
	if err != nil {
		return nil, errors.WrapFail(err, "unmarshal document")
	}

	delete(doc, keyAttribute)
	return doc, nil
}

func (m *manager) Set(ctx context.Context, collection string, key string, doc docstore.Document) error {
	item, err := toItem(key, doc)
	if err != nil {
		return err
	}

	_, err = m.dbs.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: m.table(collection),
		Item:      item,
	})
	if err != nil {
		return errors.WrapFailf(err, "put item %s/%s", collection, key)
	}

	m.log.Debugf("put %s/%s", collection, key)
	return nil
}

func (m *manager) Get(ctx context.Context, collection string, key string) (docstore.Document, error) {
	out, err := m.dbs.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName:      m.table(collection),
		Key:            itemKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.WrapFailf(err, "get item %s/%s", collection, key)
	}

	if len(out.Item) == 0 {
		return nil, docstore.ErrNotFound
	}

	return fromItem(out.Item)
}

func (m *manager) Close(context.Context) error {
	return nil
}
