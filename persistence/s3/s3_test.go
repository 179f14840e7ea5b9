package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mirrorskill/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.AttributesStore = (*Store)(nil)
	_ API                  = (*s3.Client)(nil)
)

type mockAPI struct {
	mock.Mock
	putBody string
}

func (m *mockAPI) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(aws.ToString(in.Bucket), aws.ToString(in.Key))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *mockAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, _ := io.ReadAll(in.Body)
	m.putBody = string(data)
	args := m.Called(aws.ToString(in.Bucket), aws.ToString(in.Key))
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockAPI) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(aws.ToString(in.Bucket), aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func body(s string) *s3.GetObjectOutput {
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(s))}
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(&mockAPI{}, Config{})
	assert.ErrorIs(t, err, ErrNoBucket)
}

func TestStore_GetExisting(t *testing.T) {
	api := &mockAPI{}
	api.On("GetObject", "mirror", "attrs/u1").Return(body(`{"name":"Snow White","characteristic":"prettiest"}`), nil)

	store, err := New(api, Config{Bucket: "mirror", PathPrefix: "attrs/"})
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, core.State{Name: "Snow White", Characteristic: "prettiest"}, got)
	api.AssertExpectations(t)
}

func TestStore_GetMissingKeyIsEmpty(t *testing.T) {
	api := &mockAPI{}
	api.On("GetObject", "mirror", "u1").Return(nil, &types.NoSuchKey{})

	store, _ := New(api, Config{Bucket: "mirror"})
	got, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestStore_GetEmptyBody(t *testing.T) {
	api := &mockAPI{}
	api.On("GetObject", "mirror", "u1").Return(body(""), nil)

	store, _ := New(api, Config{Bucket: "mirror"})
	got, err := store.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestStore_GetErrors(t *testing.T) {
	boom := errors.New("access denied")
	api := &mockAPI{}
	api.On("GetObject", "mirror", "u1").Return(nil, boom)
	api.On("GetObject", "mirror", "u2").Return(body("{not json"), nil)

	store, _ := New(api, Config{Bucket: "mirror"})
	_, err := store.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, boom)

	_, err = store.Get(context.Background(), "u2")
	assert.Error(t, err)
}

func TestStore_SaveWritesJSONAtPrefixedKey(t *testing.T) {
	api := &mockAPI{}
	api.On("PutObject", "mirror", "attrs/u1").Return(nil)

	store, _ := New(api, Config{Bucket: "mirror", PathPrefix: "attrs/"})
	err := store.Save(context.Background(), "u1", core.State{Name: "Evil Queen", Characteristic: "ugliest"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Evil Queen","characteristic":"ugliest"}`, api.putBody)
	api.AssertExpectations(t)
}

func TestStore_Delete(t *testing.T) {
	api := &mockAPI{}
	api.On("DeleteObject", "mirror", "u1").Return(nil)
	api.On("DeleteObject", "mirror", "u2").Return(errors.New("boom"))

	store, _ := New(api, Config{Bucket: "mirror"})
	assert.NoError(t, store.Delete(context.Background(), "u1"))
	assert.Error(t, store.Delete(context.Background(), "u2"))
}

func TestStore_Key(t *testing.T) {
	store, _ := New(&mockAPI{}, Config{Bucket: "b", PathPrefix: "p/"})
	assert.Equal(t, "p/amzn1.ask.account.X", store.Key("amzn1.ask.account.X"))
}
