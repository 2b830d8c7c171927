package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const bucketLocationXML = `<?xml version="1.0" encoding="UTF-8"?>
<LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/"></LocationConstraint>`

// fakeS3 answers the handful of S3 calls the storage service makes.
type fakeS3 struct {
	mu       sync.Mutex
	buckets  map[string]bool
	objects  map[string][]byte
	requests []string
	denyHead bool
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.Trim(r.URL.Path, "/")
	bucket, object, _ := strings.Cut(path, "/")
	if _, ok := r.URL.Query()["location"]; ok {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = io.WriteString(w, bucketLocationXML)
		return
	}
	f.requests = append(f.requests, r.Method+" "+path)

	switch {
	case r.Method == http.MethodHead && object == "":
		if f.denyHead {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if !f.buckets[bucket] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut && object == "":
		f.buckets[bucket] = true
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[path] = body
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodDelete:
		delete(f.objects, path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

type MinioServiceTestSuite struct {
	suite.Suite
	s3      *fakeS3
	server  *httptest.Server
	service MinioService
	ctx     context.Context
}

func (suite *MinioServiceTestSuite) SetupTest() {
	suite.s3 = &fakeS3{buckets: map[string]bool{}, objects: map[string][]byte{}}
	suite.server = httptest.NewServer(suite.s3)
	suite.ctx = context.Background()

	svc, err := NewMinioService(strings.TrimPrefix(suite.server.URL, "http://"), "minioadmin", "minioadmin", false)
	suite.Require().NoError(err)
	suite.service = svc
}

func (suite *MinioServiceTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *MinioServiceTestSuite) TestEnsureBucketExists_CreatesMissingBucket() {
	suite.NoError(suite.service.EnsureBucketExists(suite.ctx, "workshop-assets"))
	suite.True(suite.s3.buckets["workshop-assets"])
	suite.Contains(suite.s3.requests, "PUT workshop-assets")
}

func (suite *MinioServiceTestSuite) TestEnsureBucketExists_KeepsExistingBucket() {
	suite.s3.buckets["workshop-assets"] = true

	suite.NoError(suite.service.EnsureBucketExists(suite.ctx, "workshop-assets"))
	suite.NotContains(suite.s3.requests, "PUT workshop-assets")
}

func (suite *MinioServiceTestSuite) TestEnsureBucketExists_AccessDenied() {
	suite.s3.denyHead = true

	err := suite.service.EnsureBucketExists(suite.ctx, "workshop-assets")
	suite.ErrorContains(err, "check bucket workshop-assets")
}

func (suite *MinioServiceTestSuite) TestUploadAndDeleteObject() {
	suite.s3.buckets["workshop-assets"] = true
	payload := "\x89PNG logo"

	err := suite.service.UploadObject(suite.ctx, "workshop-assets", "logos/a.png", strings.NewReader(payload), int64(len(payload)), "image/png")
	suite.Require().NoError(err)
	// Plain HTTP uploads arrive aws-chunked; the payload sits inside the chunk framing.
	suite.Contains(string(suite.s3.objects["workshop-assets/logos/a.png"]), payload)

	suite.NoError(suite.service.DeleteObject(suite.ctx, "workshop-assets", "logos/a.png"))
	suite.NotContains(suite.s3.objects, "workshop-assets/logos/a.png")
}

func (suite *MinioServiceTestSuite) TestGetPresignedURL() {
	url, err := suite.service.GetPresignedURL(suite.ctx, "workshop-assets", "logos/a.png", 15*time.Minute)

	suite.Require().NoError(err)
	suite.Contains(url, "/workshop-assets/logos/a.png")
	suite.Contains(url, "X-Amz-Expires=900")
	suite.Contains(url, "X-Amz-Signature=")
}

func TestMinioServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MinioServiceTestSuite))
}
