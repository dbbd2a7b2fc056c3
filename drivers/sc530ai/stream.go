package sc530ai

// SelectMode records the mode matching req for the next StartStream. The
// running stream is not reprogrammed.
func (d *Device) SelectMode(req ModeRequest) (Mode, error) {
	m, err := FindMode(req)
	if err != nil {
		return Mode{}, err
	}
	d.mu.Lock()
	d.pending = m
	d.mu.Unlock()
	return m, nil
}

// SelectModeID is SelectMode by index.
func (d *Device) SelectModeID(id ModeID) (Mode, error) {
	m, err := LookupMode(id)
	if err != nil {
		return Mode{}, err
	}
	d.mu.Lock()
	d.pending = m
	d.mu.Unlock()
	return m, nil
}

// StartStream writes the pending mode's table in order, latches it as the
// current mode and sets the stream enable bit.
func (d *Device) StartStream() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == PowerOff {
		return ErrNotPowered
	}
	m := d.pending
	if err := d.writeArray(m.regs); err != nil {
		return err
	}
	d.current = m
	if err := d.writeReg(regStream, streamOn); err != nil {
		return err
	}
	d.state = PowerStreaming
	d.debug("sc530ai: stream on %dx%d@%d hdr=%t", m.Width, m.Height, m.FPS, m.HDR)
	return nil
}

// StopStream marks the stream stopped. No registers are written; the next
// StartStream reprograms the full table.
func (d *Device) StopStream() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == PowerStreaming {
		d.state = PowerOn
	}
	return nil
}

// SetFrameRate retargets the live mode to fps by recomputing VTS
// (pclk / fps / hts, floored at MinVTS). The register table is not rewritten.
func (d *Device) SetFrameRate(fps uint32) (uint32, error) {
	if fps == 0 {
		return 0, ErrInvalidParam
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current.VTS = vtsFor(d.current, fps)
	return d.current.VTS, nil
}
