package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/opendis/internal/logger"
	"github.com/marmos91/opendis/pkg/config"
	"github.com/marmos91/opendis/pkg/dis/pdu"
	"github.com/marmos91/opendis/pkg/dis/record"
	"github.com/marmos91/opendis/pkg/transport"
)

var (
	sendTo         string
	sendTCP        bool
	sendCount      int
	sendInterval   time.Duration
	sendEntity     uint16
	sendReceiver   string
	sendRequestID  uint32
	sendText       string
	sendMarking    string
	sendForce      uint8
	sendEntityType string
	sendLocation   string
	sendVelocity   string
	sendReason     uint8
	sendAckFlag    uint16
	sendResponse   uint16
)

var sendCmd = &cobra.Command{
	Use:   "send <kind>",
	Short: "Encode and send a PDU",
	Long: `Build a PDU, stamp it with this process's exercise, protocol version
and timestamp, and send it.

Kinds: ` + strings.Join(pduKindNames(), ", ") + `

UDP sends go to transport.broadcast or transport.multicast_group unless --to
is given. With --tcp the PDU is written to a TCP stream listener.

Examples:
  # Broadcast a comment
  opendis send comment --text "exercise starting"

  # Send an entity state every second, ten times
  opendis send entity-state --entity 42 --marking TANK1 \
      --location 4000000,100000,4900000 --count 10 --interval 1s

  # Freeze the exercise over TCP
  opendis send stop-freeze --tcp --to sim-host:3000 --reason 1`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: pduKindNames(),
	RunE:      runSend,
}

func init() {
	f := sendCmd.Flags()
	f.StringVar(&sendTo, "to", "", "destination host:port (default: transport.broadcast or multicast group)")
	f.BoolVar(&sendTCP, "tcp", false, "send over a TCP stream instead of UDP")
	f.IntVarP(&sendCount, "count", "n", 1, "number of PDUs to send")
	f.DurationVar(&sendInterval, "interval", time.Second, "delay between PDUs when --count > 1")
	f.Uint16Var(&sendEntity, "entity", 1, "entity number of the originating entity id")
	f.StringVar(&sendReceiver, "receiver", "65535:65535:65535", "receiving entity id site:application:entity")
	f.Uint32Var(&sendRequestID, "request-id", 0, "request id for simulation management PDUs")
	f.StringVar(&sendText, "text", "", "comment text")
	f.StringVar(&sendMarking, "marking", "", "entity marking (up to 11 characters)")
	f.Uint8Var(&sendForce, "force", 1, "force id (1 friendly, 2 opposing, 3 neutral)")
	f.StringVar(&sendEntityType, "entity-type", "", "entity type kind:domain:country:category:subcategory:specific:extra")
	f.StringVar(&sendLocation, "location", "", "geocentric location x,y,z in meters")
	f.StringVar(&sendVelocity, "velocity", "", "linear velocity x,y,z in m/s")
	f.Uint8Var(&sendReason, "reason", 0, "stop-freeze reason")
	f.Uint16Var(&sendAckFlag, "ack-flag", 0, "acknowledge flag")
	f.Uint16Var(&sendResponse, "response-flag", 1, "acknowledge response flag")
}

func sendOptions(dis config.DISConfig) (pduOptions, error) {
	o := pduOptions{
		Origin:       record.NewEntityID(dis.SiteID, dis.ApplicationID, sendEntity),
		RequestID:    sendRequestID,
		Text:         sendText,
		DatumID:      1,
		Marking:      sendMarking,
		Force:        sendForce,
		Reason:       sendReason,
		AckFlag:      sendAckFlag,
		ResponseFlag: sendResponse,
	}
	var err error
	if o.Receiver, err = parseEntityID(sendReceiver); err != nil {
		return o, err
	}
	if o.EntityType, err = parseEntityType(sendEntityType); err != nil {
		return o, err
	}
	loc, err := parseVector(sendLocation)
	if err != nil {
		return o, err
	}
	o.Location = record.WorldCoordinate{X: loc[0], Y: loc[1], Z: loc[2]}
	vel, err := parseVector(sendVelocity)
	if err != nil {
		return o, err
	}
	o.Velocity = record.LinearVelocity{X: float32(vel[0]), Y: float32(vel[1]), Z: float32(vel[2])}
	return o, nil
}

func openSender(ctx context.Context, cfg *config.Config, to string, tcp bool) (transport.Sender, error) {
	if tcp {
		if to == "" {
			return nil, fmt.Errorf("--to is required with --tcp")
		}
		return transport.DialTCP(ctx, to, nil)
	}
	udp := transport.UDPConfig{
		Listen:         ":0",
		Broadcast:      cfg.Transport.Broadcast,
		MulticastGroup: cfg.Transport.MulticastGroup,
		Interface:      cfg.Transport.Interface,
	}
	if to != "" {
		udp.Broadcast = to
		udp.MulticastGroup = ""
	}
	return transport.ListenUDP(ctx, udp)
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := sendOptions(cfg.DIS)
	if err != nil {
		return err
	}
	if _, err := buildPDU(args[0], opts); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	sender, err := openSender(ctx, cfg, sendTo, sendTCP)
	if err != nil {
		return err
	}
	defer func() { _ = sender.Close() }()

	for i := range sendCount {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(sendInterval):
			}
		}
		opts.Now = time.Now()
		p, _ := buildPDU(args[0], opts)
		stamp(cfg.DIS, p)
		if err := sender.Send(ctx, p); err != nil {
			return fmt.Errorf("send %s: %w", args[0], err)
		}
		logger.Debug("PDU sent", logger.PDUType(p.Kind().Type.String()), logger.Length(pdu.Length(p)))
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sent %d %s PDU(s)\n", sendCount, args[0])
	return nil
}
