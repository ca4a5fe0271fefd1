
package hotelconfig

import (
	"context"
	"sync"
)

var _ uploader = &uploaderMock{}

type uploaderMock struct {
	UploadFunc func(ctx context.Context, objectPath string, contentType string, body []byte) (string, error)

	calls struct {
		Upload []struct {
			Ctx         context.Context
			ObjectPath  string
			ContentType string
			Body        []byte
		}
	}
	lockUpload sync.RWMutex
}

func (mock *uploaderMock) Upload(ctx context.Context, objectPath string, contentType string, body []byte) (string, error) {
	if mock.UploadFunc == nil {
		panic("uploaderMock.UploadFunc: method is nil but uploader.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ObjectPath  string
		ContentType string
		Body        []byte
	}{
		Ctx:         ctx,
		ObjectPath:  objectPath,
		ContentType: contentType,
		Body:        body,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, objectPath, contentType, body)
}

func (mock *uploaderMock) UploadCalls() []struct {
	Ctx         context.Context
	ObjectPath  string
	ContentType string
	Body        []byte
} {
	var calls []struct {
		Ctx         context.Context
		ObjectPath  string
		ContentType string
		Body        []byte
	}
	mock.lockUpload.RLock()
	calls = mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}
