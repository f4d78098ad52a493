package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "rzp_test_secret"
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("order_abc|pay_xyz"))
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifySignature("order_abc", "pay_xyz", signature, secret))
	assert.False(t, VerifySignature("order_abc", "pay_other", signature, secret))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", signature, "wrong-secret"))
	assert.False(t, VerifySignature("order_abc", "pay_xyz", "forged", secret))
}
