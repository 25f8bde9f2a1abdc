package unifi

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DeviceState is the adoption/connection state of a device.
type DeviceState string

const (
	DeviceStateOnline                DeviceState = "ONLINE"
	DeviceStateOffline               DeviceState = "OFFLINE"
	DeviceStatePendingAdoption       DeviceState = "PENDING_ADOPTION"
	DeviceStateUpdating              DeviceState = "UPDATING"
	DeviceStateGettingReady          DeviceState = "GETTING_READY"
	DeviceStateAdopting              DeviceState = "ADOPTING"
	DeviceStateDeleting              DeviceState = "DELETING"
	DeviceStateConnectionInterrupted DeviceState = "CONNECTION_INTERRUPTED"
	DeviceStateIsolated              DeviceState = "ISOLATED"
)

// Device is the overview representation returned by list endpoints.
type Device struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Model      string      `json:"model"`
	MacAddress string      `json:"macAddress"`
	IPAddress  string      `json:"ipAddress"`
	State      DeviceState `json:"state"`
	Features   []string    `json:"features"`
	Interfaces []string    `json:"interfaces"`
}

// DeviceDetails is the full representation of a single device.
type DeviceDetails struct {
	ID                uuid.UUID                 `json:"id"`
	Name              string                    `json:"name"`
	Model             string                    `json:"model"`
	Supported         bool                      `json:"supported"`
	MacAddress        string                    `json:"macAddress"`
	IPAddress         string                    `json:"ipAddress"`
	State             DeviceState               `json:"state"`
	FirmwareVersion   string                    `json:"firmwareVersion"`
	FirmwareUpdatable bool                      `json:"firmwareUpdatable"`
	AdoptedAt         *time.Time                `json:"adoptedAt,omitempty"`
	ProvisionedAt     *time.Time                `json:"provisionedAt,omitempty"`
	ConfigurationID   string                    `json:"configurationId"`
	Uplink            *DeviceUplink             `json:"uplink,omitempty"`
	Features          *DeviceFeatures           `json:"features,omitempty"`
	Interfaces        *DevicePhysicalInterfaces `json:"interfaces,omitempty"`
}

// DeviceUplink identifies the device this device is connected through.
type DeviceUplink struct {
	DeviceID uuid.UUID `json:"deviceId"`
}

// DeviceFeatures lists the feature sets a device exposes.
type DeviceFeatures struct {
	Switching   *SwitchFeature      `json:"switching,omitempty"`
	AccessPoint *AccessPointFeature `json:"accessPoint,omitempty"`
}

// SwitchFeature marks switching capability. Currently carries no fields.
type SwitchFeature struct{}

// AccessPointFeature marks access point capability. Currently carries no fields.
type AccessPointFeature struct{}

// DevicePhysicalInterfaces describes a device's physical ports and radios.
type DevicePhysicalInterfaces struct {
	Ports  []EthernetPort  `json:"ports,omitempty"`
	Radios []WirelessRadio `json:"radios,omitempty"`
}

// EthernetPort describes a wired port.
type EthernetPort struct {
	Idx          int           `json:"idx"`
	State        PortState     `json:"state"`
	Connector    ConnectorType `json:"connector"`
	MaxSpeedMbps int           `json:"maxSpeedMbps"`
	SpeedMbps    int           `json:"speedMbps"`
}

// WirelessRadio describes a wireless radio.
type WirelessRadio struct {
	WlanStandard    *WlanStandard  `json:"wlanStandard,omitempty"`
	FrequencyGHz    *FrequencyBand `json:"frequencyGHz,omitempty"`
	ChannelWidthMHz *int           `json:"channelWidthMHz,omitempty"`
	Channel         *int           `json:"channel,omitempty"`
}

// deviceAction is the request body for the device actions endpoint.
type deviceAction struct {
	Action string `json:"action"`
}

// ListDevices retrieves a single page of devices for a site.
func (c *Client) ListDevices(ctx context.Context, siteID string, params *ListParams) (*Page[Device], error) {
	site, err := parseID("site ID", siteID)
	if err != nil {
		return nil, err
	}

	v, err := listQuery(params)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/sites/%s/devices", site), v, nil)
	if err != nil {
		return nil, err
	}

	return doJSON[Page[Device]](c, req)
}

// AllDevices retrieves all devices for a site, traversing every page, and
// returns them in server order.
func (c *Client) AllDevices(ctx context.Context, siteID string) ([]Device, error) {
	return collect(c.DevicesIter(ctx, siteID))
}

// DevicesIter returns a lazy iterator over all devices for a site.
func (c *Client) DevicesIter(ctx context.Context, siteID string) iter.Seq2[Device, error] {
	return iterate(ctx, func(ctx context.Context, p ListParams) (*Page[Device], error) {
		return c.ListDevices(ctx, siteID, &p)
	})
}

// GetDevice retrieves detailed information about a specific device.
func (c *Client) GetDevice(ctx context.Context, siteID, deviceID string) (*DeviceDetails, error) {
	site, err := parseID("site ID", siteID)
	if err != nil {
		return nil, err
	}
	device, err := parseID("device ID", deviceID)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/sites/%s/devices/%s", site, device), nil, nil)
	if err != nil {
		return nil, err
	}

	return doJSON[DeviceDetails](c, req)
}

// RestartDevice asks the controller to restart a specific device.
func (c *Client) RestartDevice(ctx context.Context, siteID, deviceID string) error {
	site, err := parseID("site ID", siteID)
	if err != nil {
		return err
	}
	device, err := parseID("device ID", deviceID)
	if err != nil {
		return err
	}

	req, err := c.newRequest(
		ctx,
		http.MethodPost,
		fmt.Sprintf("/v1/sites/%s/devices/%s/actions", site, device),
		nil,
		deviceAction{Action: "RESTART"},
	)
	if err != nil {
		return err
	}

	return c.doNoContent(req)
}
