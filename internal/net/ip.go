package net

import (
	"log"
	"net"
)

// OutgoingIP finds the address other machines on the LAN should use for the
// share link. No packets are sent.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return firstIPv4()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// firstIPv4 is used on networks without a default route.
func firstIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("[NET] interfaces: %v", err)
		return "127.0.0.1"
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	log.Println("[NET] no LAN address found, share link uses loopback")
	return "127.0.0.1"
}
