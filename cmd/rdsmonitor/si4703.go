package main

import (
	"errors"
	"io"
	"sync"
	"time"

	"periph.io/x/conn/v3/i2c"
)

var ErrInvalidReg = errors.New("invalid register")
var ErrInvalidFreq = errors.New("invalid frequency")
var ErrTimeout = errors.New("timeout")

// Si4703 drives Silicon Labs' FM tuner/RDS receiver chip over I2C. Once
// RDS is enabled, the chip does its own block synchronization and
// burst-error correction in hardware and exposes the result as four
// already-aligned data words (RDSA..RDSD) plus per-block error counts —
// this driver's job ends at handing those words to the caller; decoding
// them is rds.NewPreFramedGroup's job, not this file's.
type Si4703 struct {
	sync.Mutex
	device  i2c.Dev
	Polling bool
	Rate    time.Duration
	Reg     [16]uint16
	Update  chan struct{}
}

const (
	// registers 0..1 are read-only
	DEVICEID = iota
	CHIPID
	// registers 2..7 are read-write
	POWERCFG
	CHANNEL
	SYSCONFIG1
	SYSCONFIG2
	SYSCONFIG3
	OSCILLATOR

	// no registers 8, 9 ; registers a..f are read-only
	_
	_
	STATUSRSSI
	READCHAN
	RDSA
	RDSB
	RDSC
	RDSD
)

func (s *Si4703) String() string {
	return "Si4703"
}

/*
From AN230:
> When using the polling method, it is best not to poll continuously.
> The data will appear in intervals of ~88 ms and the RDSR indicator will be
> available for at least 40 ms, so a polling rate of 40 ms or less should be sufficient.
*/
func NewSi4703(bus i2c.BusCloser, addr uint16) (*Si4703, error) {
	s := Si4703{
		device:  i2c.Dev{Bus: bus, Addr: addr},
		Polling: true,
		Rate:    40 * time.Millisecond,
		Update:  make(chan struct{}, 1),
	}

	go func() {
		next := time.Now()
		for {
			next = next.Add(s.Rate)
			time.Sleep(time.Until(next))
			if s.Polling {
				s.Read()
				select {
				case s.Update <- struct{}{}:
				default:
				}
			}
		}
	}()

	s.Read()
	return &s, nil
}

func (s *Si4703) Read() error {
	buf := make([]byte, 32)
	s.Lock()
	defer s.Unlock()
	if err := s.device.Tx(nil, buf); err != nil {
		return err
	}
	for i := 0; i < 16; i++ {
		s.Reg[(i+10)%16] = uint16(buf[i*2])*256 + uint16(buf[i*2+1])
	}
	return nil
}

func (s *Si4703) Set(reg int, val uint16) error {
	var n int
	var err error

	idxh := (reg - 2) * 2
	idxl := idxh + 1
	varh := byte(val >> 8)
	varl := byte(val & 0xff)

	if err = s.Read(); err != nil {
		return err
	}

	buf := make([]byte, 12)
	s.Lock()

	buf[0] = byte(s.Reg[2] >> 8)
	buf[1] = byte(s.Reg[2] & 0xff)
	buf[2] = byte(s.Reg[3] >> 8)
	buf[3] = byte(s.Reg[3] & 0xff)
	buf[4] = byte(s.Reg[4] >> 8)
	buf[5] = byte(s.Reg[4] & 0xff)
	buf[6] = byte(s.Reg[5] >> 8)
	buf[7] = byte(s.Reg[5] & 0xff)
	buf[8] = byte(s.Reg[6] >> 8)
	buf[9] = byte(s.Reg[6] & 0xff)
	buf[10] = byte(s.Reg[7] >> 8)
	buf[11] = byte(s.Reg[7] & 0xff)

	buf[idxh] = varh
	buf[idxl] = varl

	n, err = s.device.Write(buf)
	s.Unlock()
	if err != nil {
		return err
	}
	if n != 12 {
		return io.ErrShortWrite
	}
	return s.Read()
}

/*
Changing the channel:

1. mask off the old channel bits (lower 9 bits)
2. set channel | (1<<15)  (TUNE: top bit of 2nd LSB)
3. send register update
4. wait for s.Reg[STATUSRSSI] & (1<<14) != 0  // 14 == STC
5. set channel ^ (1<<15)  (clear TUNE bit)
*/
func (s *Si4703) SetChannel(c float64) error {
	var tmp, newc uint16

	if c < 87.5 || c > 107.9 {
		return ErrInvalidFreq
	}

	newc = uint16((c - 87.5) / 0.2)

	tmp = s.Reg[CHANNEL]
	tmp &= 0xFE00
	tmp |= newc
	tmp |= 1 << 15
	s.Set(CHANNEL, tmp)

	deadline := time.Now().Add(time.Second * 5)
	for {
		if s.Reg[STATUSRSSI]&(1<<14) != 0 {
			break
		}
		if time.Now().After(deadline) {
			return ErrTimeout
		}
		if !s.Polling {
			if err := s.Read(); err != nil {
				return err
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	tmp = s.Reg[CHANNEL]
	tmp &= ^uint16(1 << 15)
	s.Set(CHANNEL, tmp)
	return nil
}

func (s *Si4703) SetOsc(on bool) {
	if on {
		s.Set(OSCILLATOR, 0x8100)
	} else {
		s.Set(OSCILLATOR, 0x0000)
	}
}

func (s *Si4703) Mute(on bool) {
	var tmp uint16

	if on && (s.Reg[POWERCFG]&0x4000 != 0x4000) ||
		!on && (s.Reg[POWERCFG]&0x4000 == 0x4000) {
		return
	}
	if on {
		tmp = s.Reg[POWERCFG] &^ uint16(0x4000)
	} else {
		tmp = s.Reg[POWERCFG] | 0x4000
	}
	s.Set(POWERCFG, tmp)
}

func (s *Si4703) Enable() {
	if s.Reg[POWERCFG]&0x0001 == 0x0001 {
		return
	}
	time.Sleep(1500 * time.Microsecond)
	s.Set(POWERCFG, (s.Reg[POWERCFG]|0x0001)&^uint16(0x0040))
}

func (s *Si4703) Disable() {
	s.Set(POWERCFG, s.Reg[POWERCFG]|0x0040)
}

func (s *Si4703) Volume(v int) {
	ext := s.Reg[SYSCONFIG3]&0x0100 == 0x0100
	if v < 0 {
		v = 0
	} else if v > 31 {
		v = 31
	}
	newext := !(v&0x10 == 0x10)
	newvol := uint16(v & 0x0F)
	if ext && !newext {
		s.Set(SYSCONFIG2, (s.Reg[SYSCONFIG2]&0xFFF0)|newvol)
		s.Set(SYSCONFIG3, s.Reg[SYSCONFIG3]&^uint16(0x0100))
	} else if !ext && newext {
		s.Set(SYSCONFIG3, s.Reg[SYSCONFIG3]|uint16(0x0100))
		s.Set(SYSCONFIG2, (s.Reg[SYSCONFIG2]&0xFFF0)|newvol)
	} else {
		s.Set(SYSCONFIG2, (s.Reg[SYSCONFIG2]&0xFFF0)|newvol)
	}
}
