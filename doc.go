// Package ch3w implements the WeightedCh3 hashing scheme: a deterministic,
// weighted, consistent mapping from a key to one index in a fixed-size pool
// of servers.
//
// Each server is assigned a weight between 0.0 and 1.0 inclusive. A pick
// retries up to retryCount times:
//
//	index = base(key + salt(attempt), n)
//	if score(key) < weights[index] * max(uint32):
//		return index
//
// and falls back to the index probed by the last attempt when every attempt
// is rejected. Salts are the digit-reversed decimals "", "1", ..., "9",
// "01", "11", "21", ..., so a pick is a pure function of the key and the
// weight vector and agrees across processes.
//
// With all weights at 1.0 the scheme returns exactly the unweighted base
// placement. Lowering a single weight slightly moves only a small fraction
// of that server's keys, spread over the rest of the pool; resizing the
// pool stays as consistent as the underlying base placement.
package ch3w
