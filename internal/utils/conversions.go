package utils

import (
	"github.com/vmihailenco/msgpack/v5"
)

// EncodeFrame serializes a frame of samples using MessagePack
func EncodeFrame(samples []float64) ([]byte, error) {
	return msgpack.Marshal(samples)
}

// DecodeFrame deserializes a MessagePack payload into a frame of samples
func DecodeFrame(data []byte) ([]float64, error) {
	var samples []float64
	err := msgpack.Unmarshal(data, &samples)
	return samples, err
}
