/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 *
 * Package s3store reads and writes league sheets held in Amazon S3 and
 * doubles as an httpcache.Cache for remote match sources. The cache half is
 * derived from github.com/sourcegraph/s3cache.
 */
package s3store

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const (
	Scheme      = "s3://"
	cachePrefix = "httpcache"
)

var (
	ErrNoSuchKey   = errors.New("no such key")
	ErrInvalidPath = errors.New("invalid s3 path")
)

// Store reads and writes objects in a single bucket.
type Store struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is initialized by Init() from the default Config; callers may
	// replace it with their own client.
	Client *s3.Client

	bucketName string

	// gzip compresses httpcache entries and appends ".gz" to their keys.
	// Objects accessed through Read/Write are never compressed.
	gzip bool

	logErrors bool

	ctx context.Context
}

// New returns a Store for bucketName. Callers must invoke Init() before use.
func New(ctxIn context.Context, bucketNameIn string, gzipIn bool,
	logErrorsIn bool) *Store {

	return &Store{
		ctx:        ctxIn,
		bucketName: bucketNameIn,
		gzip:       gzipIn,
		logErrors:  logErrorsIn,
	}
}

// ParsePath splits "s3://bucket/some/key.csv" into bucket and key.
func ParsePath(path string) (bucket string, key string, err error) {
	if !strings.HasPrefix(path, Scheme) {
		return "", "", fmt.Errorf("%w: %v lacks %v prefix", ErrInvalidPath,
			path, Scheme)
	}
	bucket, key, _ = strings.Cut(strings.TrimPrefix(path, Scheme), "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidPath, path)
	}

	return bucket, key, nil
}

// IsPath reports whether loc names an S3 object.
func IsPath(loc string) bool {
	return strings.HasPrefix(loc, Scheme)
}

// Init loads the default AWS configuration (environment variables, then the
// shared config and credentials files) and verifies the bucket is reachable.
func (s *Store) Init() error {
	var err error
	s.Config, err = config.LoadDefaultConfig(s.ctx)
	if err != nil {
		return fmt.Errorf("s3store.init: failed to load AWS config: %w", err)
	}
	s.Client = s3.NewFromConfig(s.Config)

	if _, err = s.Client.HeadBucket(s.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucketName),
	}); err != nil {
		return fmt.Errorf("s3store.init: head bucket failed for %s: %w", s.bucketName, err)
	}

	return nil
}

// Read returns the contents of key.
func (s *Store) Read(key string) ([]byte, error) {
	resp, err := s.Client.GetObject(s.ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey" {
			return nil, fmt.Errorf("s3store.read: %v%v/%v: %w", Scheme,
				s.bucketName, key, ErrNoSuchKey)
		}
		return nil, fmt.Errorf("s3store.read: %v%v/%v: %w", Scheme,
			s.bucketName, key, err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// Write stores data under key with the given content type.
func (s *Store) Write(key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.Client.PutObject(s.ctx, input); err != nil {
		return fmt.Errorf("s3store.write: %v%v/%v: %w", Scheme, s.bucketName,
			key, err)
	}

	return nil
}

// Get implements httpcache.Cache.
func (s *Store) Get(key string) ([]byte, bool) {
	objKey := s.cacheKeyToObjectKey(key)
	data, err := s.Read(objKey)
	if err != nil {
		// a missing key is just a cache miss
		if s.logErrors && !errors.Is(err, ErrNoSuchKey) {
			log.Printf("s3store.get: %v", err)
		}
		return nil, false
	}
	if !s.gzip {
		return data, true
	}

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		if s.logErrors {
			log.Printf("s3store.get: failed to open compressed object %v: %v",
				objKey, err)
		}
		return nil, false
	}
	defer gr.Close()
	data, err = io.ReadAll(gr)
	if err != nil {
		if s.logErrors {
			log.Printf("s3store.get: failed to read object %v: %v", objKey, err)
		}
		return nil, false
	}

	return data, true
}

// Set implements httpcache.Cache.
func (s *Store) Set(key string, data []byte) {
	objKey := s.cacheKeyToObjectKey(key)
	if s.gzip {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(data); err != nil {
			if s.logErrors {
				log.Printf("s3store.set: failed to gzip data for %v: %v", objKey, err)
			}
			return
		}
		if err := gw.Close(); err != nil {
			if s.logErrors {
				log.Printf("s3store.set: failed to close gzip writer for %v: %v",
					objKey, err)
			}
			return
		}
		data = buf.Bytes()
	}

	if err := s.Write(objKey, data, ""); err != nil && s.logErrors {
		log.Printf("s3store.set: %v", err)
	}
}

// Delete implements httpcache.Cache.
func (s *Store) Delete(key string) {
	_, err := s.Client.DeleteObject(s.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.cacheKeyToObjectKey(key)),
	})
	if err != nil && s.logErrors {
		log.Printf("s3store.delete: delete failed: %v", err)
	}
}

func (s *Store) cacheKeyToObjectKey(key string) string {
	h := md5.New()
	io.WriteString(h, key)
	objKey := fmt.Sprintf("%v/%v", cachePrefix, hex.EncodeToString(h.Sum(nil)))
	if s.gzip {
		objKey += ".gz"
	}

	return objKey
}
