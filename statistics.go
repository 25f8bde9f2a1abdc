package unifi

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DeviceStatistics is the latest statistics snapshot for a device.
type DeviceStatistics struct {
	UptimeSec            int64                      `json:"uptimeSec"`
	LastHeartbeatAt      time.Time                  `json:"lastHeartbeatAt"`
	NextHeartbeatAt      time.Time                  `json:"nextHeartbeatAt"`
	LoadAverage1Min      *float64                   `json:"loadAverage1Min,omitempty"`
	LoadAverage5Min      *float64                   `json:"loadAverage5Min,omitempty"`
	LoadAverage15Min     *float64                   `json:"loadAverage15Min,omitempty"`
	CPUUtilizationPct    *float64                   `json:"cpuUtilizationPct,omitempty"`
	MemoryUtilizationPct *float64                   `json:"memoryUtilizationPct,omitempty"`
	Uplink               *UplinkStatistics          `json:"uplink,omitempty"`
	Interfaces           *DeviceInterfaceStatistics `json:"interfaces,omitempty"`
}

// UplinkStatistics carries uplink throughput rates.
type UplinkStatistics struct {
	TxRateBps int64 `json:"txRateBps"`
	RxRateBps int64 `json:"rxRateBps"`
}

// DeviceInterfaceStatistics carries per-interface statistics.
type DeviceInterfaceStatistics struct {
	Radios []WirelessRadioStatistics `json:"radios,omitempty"`
}

// WirelessRadioStatistics carries per-radio statistics.
type WirelessRadioStatistics struct {
	FrequencyGHz *FrequencyBand `json:"frequencyGHz,omitempty"`
	TxRetriesPct *float64       `json:"txRetriesPct,omitempty"`
}

// GetDeviceStatistics retrieves the latest statistics for a specific device.
func (c *Client) GetDeviceStatistics(ctx context.Context, siteID, deviceID string) (*DeviceStatistics, error) {
	site, err := parseID("site ID", siteID)
	if err != nil {
		return nil, err
	}
	device, err := parseID("device ID", deviceID)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(
		ctx,
		http.MethodGet,
		fmt.Sprintf("/v1/sites/%s/devices/%s/statistics/latest", site, device),
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return doJSON[DeviceStatistics](c, req)
}
