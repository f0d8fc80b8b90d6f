// Command arpping sends an ARP request for a target IPv4 address over a
// UDP frame device and prints the replies it receives. It exists to
// show the packet views, the dispatcher, and a frame device working
// together; it is not a real ARP implementation.
//
// Usage:
//
//	arpping <config.toml>
//
// with a config file like:
//
//	laddr = "127.0.0.1:9000"
//	raddr = "127.0.0.1:9001"
//	mac = "13:37:de:ad:be:ef"
//	sender_ip = "192.168.0.150"
//	target_ip = "192.168.0.1"
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/faern/rips"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %v <config.toml>\n", os.Args[0])
		os.Exit(1)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	dev, err := rips.NewUDPFrameDevice(cfg.laddr, cfg.raddr)
	if err != nil {
		log.Fatal().Err(err).Msg("create device")
	}
	if err := dev.BringUp(); err != nil {
		log.Fatal().Err(err).Msg("bring device up")
	}
	defer dev.BringDown()

	rx, err := rips.NewEthernetRx(cfg.mac, rips.Route{
		EtherType: rips.EtherTypeARP,
		Listener:  rips.PayloadListenerFunc(printARPReply),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configure receive path")
	}

	receiver := rips.NewReceiver(dev, rx, rips.WithLogger(log.Logger))
	receiver.Start()
	defer receiver.Stop()

	frame := make([]byte, rips.EthernetMinLen+rips.ARPMinLen)
	if err := formatARPRequest(frame, cfg.mac, cfg.senderIP, cfg.targetIP); err != nil {
		log.Fatal().Err(err).Msg("format ARP request")
	}
	if _, err := dev.WriteFrame(frame); err != nil {
		log.Fatal().Err(err).Msg("send ARP request")
	}
	log.Info().
		Stringer("target", cfg.targetIP).
		Stringer("sender", cfg.senderIP).
		Msg("ARP request sent, waiting for replies (interrupt to quit)")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
}

// formatARPRequest fills buffer with a broadcast ethernet frame
// carrying an ARP request asking who has targetIP.
func formatARPRequest(buffer []byte, senderMAC rips.MAC, senderIP, targetIP rips.IPv4) error {
	ethernet, err := rips.NewMutableEthernetPacket(buffer)
	if err != nil {
		return err
	}
	ethernet.SetDestination(rips.BroadcastMAC)
	ethernet.SetSource(senderMAC)
	ethernet.SetEtherType(rips.EtherTypeARP)

	arp, err := rips.NewMutableARPPacket(ethernet.Payload())
	if err != nil {
		return err
	}
	arp.SetIPv4OverEthernet()
	arp.SetOperation(rips.ARPOpRequest)
	arp.SetSenderHardwareAddr(senderMAC)
	arp.SetSenderProtocolAddr(senderIP)
	// the target hardware address is ignored in a request
	arp.SetTargetProtocolAddr(targetIP)
	return nil
}

func printARPReply(payload []byte) error {
	arp, err := rips.NewARPPacket(payload)
	if err != nil {
		return err
	}
	if arp.Operation() != rips.ARPOpReply {
		return nil
	}
	log.Info().
		Stringer("ip", arp.SenderProtocolAddr()).
		Stringer("mac", arp.SenderHardwareAddr()).
		Msg("ARP reply")
	return nil
}
