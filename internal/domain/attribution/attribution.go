package attribution

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Attribution carries the acquisition metadata smuggled through the payment
// gateway's externalReference echo field. The gateway treats the reference as
// opaque; the webhook decodes it to recover these fields unchanged.
type Attribution struct {
	Objective     string
	TrafficSource string
	Coupon        string
	ClientIP      string
}

const refSeparator = "."

// Encode packs the attribution into a compact opaque reference. A uuid nonce
// keeps references unique per checkout even for identical metadata.
func (a Attribution) Encode() string {
	v := url.Values{}
	setIfPresent(v, "obj", a.Objective)
	setIfPresent(v, "src", a.TrafficSource)
	setIfPresent(v, "cpn", a.Coupon)
	setIfPresent(v, "ip", a.ClientIP)

	payload := base64.RawURLEncoding.EncodeToString([]byte(v.Encode()))
	return uuid.NewString() + refSeparator + payload
}

// Decode recovers the attribution from a reference produced by Encode.
//
// References this service did not mint (legacy sales, manual gateway charges)
// decode to a zero Attribution without error: the webhook must keep working
// for them.
func Decode(ref string) Attribution {
	_, payload, found := strings.Cut(ref, refSeparator)
	if !found {
		return Attribution{}
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Attribution{}
	}
	v, err := url.ParseQuery(string(raw))
	if err != nil {
		return Attribution{}
	}

	return Attribution{
		Objective:     v.Get("obj"),
		TrafficSource: v.Get("src"),
		Coupon:        v.Get("cpn"),
		ClientIP:      v.Get("ip"),
	}
}

func setIfPresent(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
