/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

var NotifyInterrupt = notifyInterrupt
