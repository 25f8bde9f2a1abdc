package unifi

import (
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"
)

// PortState is the link state of an Ethernet port.
type PortState string

const (
	PortStateUp      PortState = "UP"
	PortStateDown    PortState = "DOWN"
	PortStateUnknown PortState = "UNKNOWN"
)

// ConnectorType is the physical connector of an Ethernet port.
type ConnectorType string

const (
	ConnectorRJ45    ConnectorType = "RJ45"
	ConnectorSFP     ConnectorType = "SFP"
	ConnectorSFPPlus ConnectorType = "SFPPLUS"
	ConnectorSFP28   ConnectorType = "SFP28"
	ConnectorQSFP28  ConnectorType = "QSFP28"
)

// WlanStandard is an IEEE 802.11 standard supported by a radio.
type WlanStandard string

const (
	WlanStandard80211A  WlanStandard = "802.11a"
	WlanStandard80211B  WlanStandard = "802.11b"
	WlanStandard80211G  WlanStandard = "802.11g"
	WlanStandard80211N  WlanStandard = "802.11n"
	WlanStandard80211AC WlanStandard = "802.11ac"
	WlanStandard80211AX WlanStandard = "802.11ax"
	WlanStandard80211BE WlanStandard = "802.11be"
)

// FrequencyBand is a radio frequency band in GHz.
type FrequencyBand string

const (
	Band2_4GHz FrequencyBand = "2.4"
	Band5GHz   FrequencyBand = "5"
	Band6GHz   FrequencyBand = "6"
	Band60GHz  FrequencyBand = "60"
)

// UnmarshalJSON accepts both wire forms the controller emits: a string
// ("2.4", "5") or a bare number (2.4, 5).
func (f *FrequencyBand) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return errors.Newf("invalid frequency band: %s", data)
		}
		s = strconv.FormatFloat(n, 'f', -1, 64)
	}

	switch FrequencyBand(s) {
	case Band2_4GHz, Band5GHz, Band6GHz, Band60GHz:
		*f = FrequencyBand(s)
		return nil
	default:
		return errors.Newf("invalid frequency band: %q", s)
	}
}
