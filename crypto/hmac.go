package crypto

import "crypto/hmac"

// HMAC computes a keyed-hash message authentication code over data with the
// given digest algorithm, in raw binary form. The key may be of any length;
// the underlying construction hashes or pads it as required.
func HMAC(alg Algorithm, data, key ByteBuffer) (ByteBuffer, error) {
	ctor, err := alg.newDigest()
	if err != nil {
		return ByteBuffer{}, err
	}

	mac := hmac.New(ctor, key.Bytes())
	mac.Write(data.Bytes())
	tag := mac.Sum(nil)
	return wrapBytes(tag, len(tag)), nil
}
