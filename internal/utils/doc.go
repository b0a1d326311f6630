// Package utils provides small helpers shared by the adapter, service and
// validator layers: the resty client wrapper, request ID generation, the
// clock abstraction and the holiday response shortener.
package utils
