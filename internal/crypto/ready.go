package crypto

import (
	"context"
	"fmt"
	"sync"
)

var readyCheck = sync.OnceValue(selfTest)

// Ready blocks until both signature backends have passed a known-answer
// self-test. The test runs once per process; later calls return its cached
// result. ctx only bounds the wait.
func Ready(ctx context.Context) error {
	done := make(chan error, 1)
	go func() { done <- readyCheck() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func selfTest() error {
	seed := Blake2b256([]byte("modhub/crypto/self-test"))
	msg := []byte("ready")

	for _, scheme := range []Scheme{Sr25519, Secp256k1} {
		pub, priv, err := scheme.Import(seed[:])
		if err != nil {
			return fmt.Errorf("%s self-test: import: %w", scheme.Name(), err)
		}
		sig, err := scheme.Sign(priv, msg)
		if err != nil {
			return fmt.Errorf("%s self-test: sign: %w", scheme.Name(), err)
		}
		ok, err := scheme.Verify(pub, msg, sig)
		if err != nil {
			return fmt.Errorf("%s self-test: verify: %w", scheme.Name(), err)
		}
		if !ok {
			return fmt.Errorf("%s self-test: signature did not verify", scheme.Name())
		}
		Wipe(priv)
	}
	return nil
}
