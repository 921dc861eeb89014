package store

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

type stubKV struct {
	values map[string]string
	getErr error
	putErr error
}

func newStubKV() *stubKV {
	return &stubKV{values: map[string]string{}}
}

func (stub *stubKV) Get(key string) (string, bool, error) {
	if stub.getErr != nil {
		return "", false, stub.getErr
	}
	value, found := stub.values[key]
	return value, found, nil
}

func (stub *stubKV) Put(key string, value string) error {
	if stub.putErr != nil {
		return stub.putErr
	}
	stub.values[key] = value
	return nil
}

func (stub *stubKV) Delete(key string) error {
	delete(stub.values, key)
	return nil
}

func newTestStores(kv KeyValue) *Stores {
	return NewStores(kv, silentLogger())
}

func silentLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var errStubStorage = errors.New("storage unavailable")
