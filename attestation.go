package fermat

import (
	"crypto/ecdsa"

	"github.com/go-errors/errors"

	"github.com/wgimson/fermat/signed"
)

// SignTranscript signs a transcript so that a third party holding the
// corresponding public key can later check that the recorded trials, and
// the verdict they support, are unmodified.
func SignTranscript(sk *ecdsa.PrivateKey, transcript *Transcript) (signed.Message, error) {
	if err := transcript.VerifyChain(); err != nil {
		return nil, errors.WrapPrefix(err, "refusing to sign inconsistent transcript", 0)
	}
	return signed.MarshalSign(sk, transcript)
}

// VerifyTranscript verifies the signature on a message created by
// SignTranscript and returns the contained transcript, after checking its
// trial hash chain.
func VerifyTranscript(pk *ecdsa.PublicKey, msg signed.Message) (*Transcript, error) {
	transcript := &Transcript{}
	if err := signed.UnmarshalVerify(pk, msg, transcript); err != nil {
		return nil, err
	}
	if err := transcript.VerifyChain(); err != nil {
		return nil, err
	}
	return transcript, nil
}
