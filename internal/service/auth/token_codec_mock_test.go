package auth

import (
	"sync"

	"github.com/shmoon-kr/gqlauth/internal/auth"
)

var _ tokenCodec = &tokenCodecMock{}

type tokenCodecMock struct {
	EncodeFunc func(payload auth.TokenPayload) (string, error)
	DecodeFunc func(token string) (auth.TokenPayload, error)

	calls struct {
		Encode []struct {
			Payload auth.TokenPayload
		}
		Decode []struct {
			Token string
		}
	}
	lockEncode sync.RWMutex
	lockDecode sync.RWMutex
}

func (mock *tokenCodecMock) Encode(payload auth.TokenPayload) (string, error) {
	if mock.EncodeFunc == nil {
		panic("tokenCodecMock.EncodeFunc: method is nil but tokenCodec.Encode was just called")
	}
	callInfo := struct {
		Payload auth.TokenPayload
	}{Payload: payload}
	mock.lockEncode.Lock()
	mock.calls.Encode = append(mock.calls.Encode, callInfo)
	mock.lockEncode.Unlock()
	return mock.EncodeFunc(payload)
}

func (mock *tokenCodecMock) EncodeCalls() []struct {
	Payload auth.TokenPayload
} {
	mock.lockEncode.RLock()
	calls := mock.calls.Encode
	mock.lockEncode.RUnlock()
	return calls
}

func (mock *tokenCodecMock) Decode(token string) (auth.TokenPayload, error) {
	if mock.DecodeFunc == nil {
		panic("tokenCodecMock.DecodeFunc: method is nil but tokenCodec.Decode was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockDecode.Lock()
	mock.calls.Decode = append(mock.calls.Decode, callInfo)
	mock.lockDecode.Unlock()
	return mock.DecodeFunc(token)
}

func (mock *tokenCodecMock) DecodeCalls() []struct {
	Token string
} {
	mock.lockDecode.RLock()
	calls := mock.calls.Decode
	mock.lockDecode.RUnlock()
	return calls
}
