package main

import (
	"log"
	"os"
	"syscall"
)

const attachParentProcess = ^uint32(0) // (DWORD)-1

var (
	modkernel32       = syscall.NewLazyDLL("kernel32.dll")
	procAttachConsole = modkernel32.NewProc("AttachConsole")
)

func attachConsole(dwParentProcess uint32) (ok bool, lasterr error) {
	r1, _, lasterr := syscall.SyscallN(procAttachConsole.Addr(), uintptr(dwParentProcess))
	ok = r1 != 0
	return
}

var oldStdin, oldStdout, oldStderr = os.Stdin, os.Stdout, os.Stderr //lint:ignore U1000 Prevent GC of the original std handles

// a GUI subsystem binary has no console, borrow the parent's so log output
// from a terminal launch is visible
func init() {
	ok, lasterr := attachConsole(attachParentProcess)
	if !ok {
		if lasterr != nil {
			log.Printf("attachConsole failed: %v", lasterr)
		}
		return
	}
	hout, err := syscall.GetStdHandle(syscall.STD_OUTPUT_HANDLE)
	if err != nil {
		log.Printf("stdout connection error: %v", err)
	}
	herr, err := syscall.GetStdHandle(syscall.STD_ERROR_HANDLE)
	if err != nil {
		log.Printf("stderr connection error: %v", err)
	}
	os.Stdout = os.NewFile(uintptr(hout), "/dev/stdout")
	os.Stderr = os.NewFile(uintptr(herr), "/dev/stderr")
	log.SetOutput(os.Stderr)
}
