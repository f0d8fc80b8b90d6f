package main

import (
	"net"

	"github.com/BurntSushi/toml"

	"github.com/faern/rips"
	"github.com/faern/rips/internal/errors"
)

// arpping config.toml key mapping.
type fileConfig struct {
	Laddr    string `toml:"laddr"`
	Raddr    string `toml:"raddr"`
	MAC      string `toml:"mac"`
	SenderIP string `toml:"sender_ip"`
	TargetIP string `toml:"target_ip"`
}

type config struct {
	laddr, raddr *net.UDPAddr
	mac          rips.MAC
	senderIP     rips.IPv4
	targetIP     rips.IPv4
}

func loadConfig(path string) (config, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return config{}, errors.Annotate(err, "load config")
	}

	var cfg config
	var err error
	cfg.laddr, err = net.ResolveUDPAddr("udp", raw.Laddr)
	if err != nil {
		return config{}, errors.Annotate(err, "resolve laddr")
	}
	cfg.raddr, err = net.ResolveUDPAddr("udp", raw.Raddr)
	if err != nil {
		return config{}, errors.Annotate(err, "resolve raddr")
	}
	hw, err := net.ParseMAC(raw.MAC)
	if err != nil || len(hw) != 6 {
		return config{}, errors.Errorf("invalid mac: %q", raw.MAC)
	}
	cfg.mac = rips.MACFromSlice(hw)
	cfg.senderIP, err = rips.ParseIPv4(raw.SenderIP)
	if err != nil {
		return config{}, errors.Annotate(err, "parse sender_ip")
	}
	cfg.targetIP, err = rips.ParseIPv4(raw.TargetIP)
	if err != nil {
		return config{}, errors.Annotate(err, "parse target_ip")
	}
	return cfg, nil
}
