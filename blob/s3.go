// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetd/fault"
)

const (
	defaultS3Region  = "us-east-1"
	defaultS3Timeout = 30 * time.Second
)

// S3Configuration - bucket access
type S3Configuration struct {
	Endpoint  string `gluamapper:"endpoint" json:"endpoint"`
	Bucket    string `gluamapper:"bucket" json:"bucket"`
	Region    string `gluamapper:"region" json:"region"`
	AccessKey string `gluamapper:"access_key" json:"access_key"`
	SecretKey string `gluamapper:"secret_key" json:"-"`
	Prefix    string `gluamapper:"prefix" json:"prefix"`
	PathStyle bool   `gluamapper:"path_style" json:"path_style"`
	Timeout   string `gluamapper:"timeout" json:"timeout"`
}

// ObjectAPI - the subset of the S3 client used here
type ObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store - files held as bucket objects
type S3Store struct {
	log     *logger.L
	client  ObjectAPI
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewS3Store - connect to a bucket using static credentials
func NewS3Store(configuration *S3Configuration, log *logger.L) (*S3Store, error) {
	if "" == configuration.Bucket {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if "" == configuration.AccessKey || "" == configuration.SecretKey {
		return nil, fmt.Errorf("s3 access_key and secret_key are required")
	}

	region := configuration.Region
	if "" == region {
		region = defaultS3Region
	}

	timeout := defaultS3Timeout
	if "" != configuration.Timeout {
		t, err := time.ParseDuration(configuration.Timeout)
		if nil != err {
			return nil, err
		}
		timeout = t
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(configuration.AccessKey, configuration.SecretKey, ""),
		),
	)
	if nil != err {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if "" != configuration.Endpoint {
			o.BaseEndpoint = aws.String(configuration.Endpoint)
		}
		o.UsePathStyle = configuration.PathStyle
	})

	return NewS3StoreWithClient(client, configuration.Bucket, configuration.Prefix, timeout, log), nil
}

// NewS3StoreWithClient - create a store over an existing object client
func NewS3StoreWithClient(client ObjectAPI, bucket string, prefix string, timeout time.Duration, log *logger.L) *S3Store {
	if timeout <= 0 {
		timeout = defaultS3Timeout
	}
	return &S3Store{
		log:     log,
		client:  client,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		timeout: timeout,
	}
}

// hash is escaped so that every hash maps to a distinct key below prefix
func (s *S3Store) objectKey(hash string) string {
	key := url.PathEscape(hash)
	if "" == s.prefix {
		return key
	}
	return s.prefix + "/" + key
}

// Put - store an object only if the hash is not already present
func (s *S3Store) Put(hash string, data []byte) (string, error) {
	found, err := s.Has(hash)
	if nil != err {
		return "", err
	}
	if found {
		return "", fault.FileAlreadyExists
	}
	err = s.Replace(hash, data)
	if nil != err {
		return "", err
	}
	return hash, nil
}

// Replace - write an object unconditionally
func (s *S3Store) Replace(hash string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	key := s.objectKey(hash)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if nil != err {
		s.log.Errorf("put object: %q  error: %s", key, err)
		return err
	}
	s.log.Debugf("put object: %q  size: %d", key, len(data))
	return nil
}

// Get - read an object
func (s *S3Store) Get(hash string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	key := s.objectKey(hash)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if nil != err {
		if isMissing(err) {
			return nil, fault.FileNotFound
		}
		s.log.Errorf("get object: %q  error: %s", key, err)
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// Has - check for an object with HeadObject
func (s *S3Store) Has(hash string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	key := s.objectKey(hash)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if nil == err {
		return true, nil
	}
	if isMissing(err) {
		return false, nil
	}
	s.log.Errorf("head object: %q  error: %s", key, err)
	return false, err
}

// HeadObject reports NotFound, GetObject reports NoSuchKey
func isMissing(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchKey *types.NoSuchKey
	return errors.As(err, &noSuchKey)
}
