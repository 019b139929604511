package photoserver

import "net"

// LocalIP returns this machine's LAN address. Dialing UDP sends no
// packets; it only makes the kernel pick the outbound interface.
func LocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
		return addr.IP.String()
	}
	return "127.0.0.1"
}
