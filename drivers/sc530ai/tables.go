package sc530ai

// Mode initialisation tables, written in order by StartStream.

var regs2880x1620At30 = []RegVal{
	{0x0103, 0x01}, {0x0100, 0x00}, {0x36e9, 0x80}, {0x37f9, 0x80},
	{0x301f, 0x1e}, {0x3250, 0x40}, {0x3251, 0x98}, {0x3253, 0x0c},
	{0x325f, 0x20}, {0x3301, 0x08}, {0x3304, 0x50}, {0x3306, 0x78},
	{0x3308, 0x14}, {0x3309, 0x70}, {0x330a, 0x00}, {0x330b, 0xd8},
	{0x330d, 0x10}, {0x331e, 0x41}, {0x331f, 0x61}, {0x3333, 0x10},
	{0x335d, 0x60}, {0x335e, 0x06}, {0x335f, 0x08}, {0x3364, 0x56},
	{0x3366, 0x01}, {0x337c, 0x02}, {0x337d, 0x0a}, {0x3390, 0x01},
	{0x3391, 0x03}, {0x3392, 0x07}, {0x3393, 0x08}, {0x3394, 0x08},
	{0x3395, 0x08}, {0x3396, 0x40}, {0x3397, 0x48}, {0x3398, 0x4b},
	{0x3399, 0x08}, {0x339a, 0x08}, {0x339b, 0x08}, {0x339c, 0x1d},
	{0x33a2, 0x04}, {0x33ae, 0x30}, {0x33af, 0x50}, {0x33b1, 0x80},
	{0x33b2, 0x48}, {0x33b3, 0x30}, {0x349f, 0x02}, {0x34a6, 0x48},
	{0x34a7, 0x4b}, {0x34a8, 0x30}, {0x34a9, 0x18}, {0x34f8, 0x5f},
	{0x34f9, 0x08}, {0x3632, 0x48}, {0x3633, 0x32}, {0x3637, 0x29},
	{0x3638, 0xc1}, {0x363b, 0x20}, {0x363d, 0x02}, {0x3670, 0x09},
	{0x3674, 0x8b}, {0x3675, 0xc6}, {0x3676, 0x8b}, {0x367c, 0x40},
	{0x367d, 0x48}, {0x3690, 0x32}, {0x3691, 0x43}, {0x3692, 0x33},
	{0x3693, 0x40}, {0x3694, 0x4b}, {0x3698, 0x85}, {0x3699, 0x8f},
	{0x369a, 0xa0}, {0x369b, 0xc3}, {0x36a2, 0x49}, {0x36a3, 0x4b},
	{0x36a4, 0x4f}, {0x36d0, 0x01}, {0x36ec, 0x13}, {0x370f, 0x01},
	{0x3722, 0x00}, {0x3728, 0x10}, {0x37b0, 0x03}, {0x37b1, 0x03},
	{0x37b2, 0x83}, {0x37b3, 0x48}, {0x37b4, 0x49}, {0x37fb, 0x25},
	{0x37fc, 0x01}, {0x3901, 0x00}, {0x3902, 0xc5}, {0x3904, 0x08},
	{0x3905, 0x8c}, {0x3909, 0x00}, {0x391d, 0x04}, {0x391f, 0x44},
	{0x3926, 0x21}, {0x3929, 0x18}, {0x3933, 0x82}, {0x3934, 0x0a},
	{0x3937, 0x5f}, {0x3939, 0x00}, {0x393a, 0x00}, {0x39dc, 0x02},
	{0x3e01, 0xcd}, {0x3e02, 0xa0}, {0x440e, 0x02}, {0x4509, 0x20},
	{0x4800, 0x04}, {0x4837, 0x28}, {0x5010, 0x10}, {0x5799, 0x06},
	{0x57ad, 0x00}, {0x5ae0, 0xfe}, {0x5ae1, 0x40}, {0x5ae2, 0x30},
	{0x5ae3, 0x2a}, {0x5ae4, 0x24}, {0x5ae5, 0x30}, {0x5ae6, 0x2a},
	{0x5ae7, 0x24}, {0x5ae8, 0x3c}, {0x5ae9, 0x30}, {0x5aea, 0x28},
	{0x5aeb, 0x3c}, {0x5aec, 0x30}, {0x5aed, 0x28}, {0x5aee, 0xfe},
	{0x5aef, 0x40}, {0x5af4, 0x30}, {0x5af5, 0x2a}, {0x5af6, 0x24},
	{0x5af7, 0x30}, {0x5af8, 0x2a}, {0x5af9, 0x24}, {0x5afa, 0x3c},
	{0x5afb, 0x30}, {0x5afc, 0x28}, {0x5afd, 0x3c}, {0x5afe, 0x30},
	{0x5aff, 0x28}, {0x36e9, 0x44}, {0x37f9, 0x34}, {0x0100, 0x01},
}

var regs2880x1620At20 = []RegVal{
	{0x0103, 0x01}, {0x0100, 0x00}, {0x36e9, 0x80}, {0x37f9, 0x80},
	{0x301f, 0x1e}, {0x320e, 0x09}, {0x320f, 0xab}, {0x3250, 0x40},
	{0x3251, 0x98}, {0x3253, 0x0c}, {0x325f, 0x20}, {0x3301, 0x08},
	{0x3304, 0x50}, {0x3306, 0x78}, {0x3308, 0x14}, {0x3309, 0x70},
	{0x330a, 0x00}, {0x330b, 0xd8}, {0x330d, 0x10}, {0x331e, 0x41},
	{0x331f, 0x61}, {0x3333, 0x10}, {0x335d, 0x60}, {0x335e, 0x06},
	{0x335f, 0x08}, {0x3364, 0x56}, {0x3366, 0x01}, {0x337c, 0x02},
	{0x337d, 0x0a}, {0x3390, 0x01}, {0x3391, 0x03}, {0x3392, 0x07},
	{0x3393, 0x08}, {0x3394, 0x08}, {0x3395, 0x08}, {0x3396, 0x40},
	{0x3397, 0x48}, {0x3398, 0x4b}, {0x3399, 0x08}, {0x339a, 0x08},
	{0x339b, 0x08}, {0x339c, 0x1d}, {0x33a2, 0x04}, {0x33ae, 0x30},
	{0x33af, 0x50}, {0x33b1, 0x80}, {0x33b2, 0x48}, {0x33b3, 0x30},
	{0x349f, 0x02}, {0x34a6, 0x48}, {0x34a7, 0x4b}, {0x34a8, 0x30},
	{0x34a9, 0x18}, {0x34f8, 0x5f}, {0x34f9, 0x08}, {0x3632, 0x48},
	{0x3633, 0x32}, {0x3637, 0x29}, {0x3638, 0xc1}, {0x363b, 0x20},
	{0x363d, 0x02}, {0x3670, 0x09}, {0x3674, 0x8b}, {0x3675, 0xc6},
	{0x3676, 0x8b}, {0x367c, 0x40}, {0x367d, 0x48}, {0x3690, 0x32},
	{0x3691, 0x43}, {0x3692, 0x33}, {0x3693, 0x40}, {0x3694, 0x4b},
	{0x3698, 0x85}, {0x3699, 0x8f}, {0x369a, 0xa0}, {0x369b, 0xc3},
	{0x36a2, 0x49}, {0x36a3, 0x4b}, {0x36a4, 0x4f}, {0x36d0, 0x01},
	{0x36ec, 0x13}, {0x370f, 0x01}, {0x3722, 0x00}, {0x3728, 0x10},
	{0x37b0, 0x03}, {0x37b1, 0x03}, {0x37b2, 0x83}, {0x37b3, 0x48},
	{0x37b4, 0x49}, {0x37fb, 0x25}, {0x37fc, 0x01}, {0x3901, 0x00},
	{0x3902, 0xc5}, {0x3904, 0x08}, {0x3905, 0x8c}, {0x3909, 0x00},
	{0x391d, 0x04}, {0x391f, 0x44}, {0x3926, 0x21}, {0x3929, 0x18},
	{0x3933, 0x82}, {0x3934, 0x0a}, {0x3937, 0x5f}, {0x3939, 0x00},
	{0x393a, 0x00}, {0x39dc, 0x02}, {0x3e01, 0xcd}, {0x3e02, 0xa0},
	{0x440e, 0x02}, {0x4509, 0x20}, {0x4800, 0x04}, {0x4837, 0x28},
	{0x5010, 0x10}, {0x5799, 0x06}, {0x57ad, 0x00}, {0x5ae0, 0xfe},
	{0x5ae1, 0x40}, {0x5ae2, 0x30}, {0x5ae3, 0x2a}, {0x5ae4, 0x24},
	{0x5ae5, 0x30}, {0x5ae6, 0x2a}, {0x5ae7, 0x24}, {0x5ae8, 0x3c},
	{0x5ae9, 0x30}, {0x5aea, 0x28}, {0x5aeb, 0x3c}, {0x5aec, 0x30},
	{0x5aed, 0x28}, {0x5aee, 0xfe}, {0x5aef, 0x40}, {0x5af4, 0x30},
	{0x5af5, 0x2a}, {0x5af6, 0x24}, {0x5af7, 0x30}, {0x5af8, 0x2a},
	{0x5af9, 0x24}, {0x5afa, 0x3c}, {0x5afb, 0x30}, {0x5afc, 0x28},
	{0x5afd, 0x3c}, {0x5afe, 0x30}, {0x5aff, 0x28}, {0x36e9, 0x44},
	{0x37f9, 0x34}, {0x0100, 0x01},
}

var regs2880x1620At60 = []RegVal{
	{0x0103, 0x01}, {0x0100, 0x00}, {0x36e9, 0x80}, {0x37f9, 0x80},
	{0x301f, 0x1d}, {0x3250, 0x40}, {0x3251, 0x98}, {0x3253, 0x0c},
	{0x325f, 0x20}, {0x3301, 0x08}, {0x3304, 0x58}, {0x3306, 0xa0},
	{0x3308, 0x14}, {0x3309, 0x50}, {0x330a, 0x01}, {0x330b, 0x10},
	{0x330d, 0x10}, {0x331e, 0x49}, {0x331f, 0x41}, {0x3333, 0x10},
	{0x335d, 0x60}, {0x335e, 0x06}, {0x335f, 0x08}, {0x3364, 0x56},
	{0x3366, 0x01}, {0x337c, 0x02}, {0x337d, 0x0a}, {0x3390, 0x01},
	{0x3391, 0x03}, {0x3392, 0x07}, {0x3393, 0x08}, {0x3394, 0x08},
	{0x3395, 0x08}, {0x3396, 0x48}, {0x3397, 0x4b}, {0x3398, 0x4f},
	{0x3399, 0x0a}, {0x339a, 0x0a}, {0x339b, 0x10}, {0x339c, 0x22},
	{0x33a2, 0x04}, {0x33ad, 0x24}, {0x33ae, 0x38}, {0x33af, 0x38},
	{0x33b1, 0x80}, {0x33b2, 0x48}, {0x33b3, 0x20}, {0x349f, 0x02},
	{0x34a6, 0x48}, {0x34a7, 0x4b}, {0x34a8, 0x20}, {0x34a9, 0x18},
	{0x34f8, 0x5f}, {0x34f9, 0x04}, {0x3632, 0x48}, {0x3633, 0x32},
	{0x3637, 0x29}, {0x3638, 0xc1}, {0x363b, 0x20}, {0x363d, 0x02},
	{0x3670, 0x09}, {0x3674, 0x88}, {0x3675, 0x88}, {0x3676, 0x88},
	{0x367c, 0x40}, {0x367d, 0x48}, {0x3690, 0x33}, {0x3691, 0x34},
	{0x3692, 0x55}, {0x3693, 0x4b}, {0x3694, 0x4f}, {0x3698, 0x85},
	{0x3699, 0x8f}, {0x369a, 0xa0}, {0x369b, 0xc3}, {0x36a2, 0x49},
	{0x36a3, 0x4b}, {0x36a4, 0x4f}, {0x36d0, 0x01}, {0x370f, 0x01},
	{0x3722, 0x00}, {0x3728, 0x10}, {0x37b0, 0x03}, {0x37b1, 0x03},
	{0x37b2, 0x83}, {0x37b3, 0x48}, {0x37b4, 0x4f}, {0x3901, 0x00},
	{0x3902, 0xc5}, {0x3904, 0x08}, {0x3905, 0x8d}, {0x3909, 0x00},
	{0x391d, 0x04}, {0x3926, 0x21}, {0x3929, 0x18}, {0x3933, 0x82},
	{0x3934, 0x08}, {0x3937, 0x5b}, {0x3939, 0x00}, {0x393a, 0x01},
	{0x39dc, 0x02}, {0x3e01, 0xcd}, {0x3e02, 0xa0}, {0x440e, 0x02},
	{0x4509, 0x20}, {0x4800, 0x04}, {0x5010, 0x10}, {0x5799, 0x06},
	{0x57ad, 0x00}, {0x5ae0, 0xfe}, {0x5ae1, 0x40}, {0x5ae2, 0x30},
	{0x5ae3, 0x2a}, {0x5ae4, 0x24}, {0x5ae5, 0x30}, {0x5ae6, 0x2a},
	{0x5ae7, 0x24}, {0x5ae8, 0x3c}, {0x5ae9, 0x30}, {0x5aea, 0x28},
	{0x5aeb, 0x3c}, {0x5aec, 0x30}, {0x5aed, 0x28}, {0x5aee, 0xfe},
	{0x5aef, 0x40}, {0x5af4, 0x30}, {0x5af5, 0x2a}, {0x5af6, 0x24},
	{0x5af7, 0x30}, {0x5af8, 0x2a}, {0x5af9, 0x24}, {0x5afa, 0x3c},
	{0x5afb, 0x30}, {0x5afc, 0x28}, {0x5afd, 0x3c}, {0x5afe, 0x30},
	{0x5aff, 0x28}, {0x36e9, 0x44}, {0x37f9, 0x44}, {0x0100, 0x01},
}

var regs2880x1620At30HDR = []RegVal{
	{0x0103, 0x01}, {0x0100, 0x00}, {0x36e9, 0x80}, {0x37f9, 0x80},
	{0x301f, 0x1c}, {0x320e, 0x0c}, {0x320f, 0xe4}, {0x3250, 0xff},
	{0x3251, 0x98}, {0x3253, 0x0c}, {0x325f, 0x20}, {0x3281, 0x01},
	{0x3301, 0x08}, {0x3304, 0x58}, {0x3306, 0xa0}, {0x3308, 0x14},
	{0x3309, 0x50}, {0x330a, 0x01}, {0x330b, 0x10}, {0x330d, 0x10},
	{0x331e, 0x49}, {0x331f, 0x41}, {0x3333, 0x10}, {0x335d, 0x60},
	{0x335e, 0x06}, {0x335f, 0x08}, {0x3364, 0x56}, {0x3366, 0x01},
	{0x337c, 0x02}, {0x337d, 0x0a}, {0x3390, 0x01}, {0x3391, 0x03},
	{0x3392, 0x07}, {0x3393, 0x08}, {0x3394, 0x08}, {0x3395, 0x08},
	{0x3396, 0x48}, {0x3397, 0x4b}, {0x3398, 0x4f}, {0x3399, 0x0a},
	{0x339a, 0x0a}, {0x339b, 0x10}, {0x339c, 0x22}, {0x33a2, 0x04},
	{0x33ad, 0x24}, {0x33ae, 0x38}, {0x33af, 0x38}, {0x33b1, 0x80},
	{0x33b2, 0x48}, {0x33b3, 0x20}, {0x349f, 0x02}, {0x34a6, 0x48},
	{0x34a7, 0x4b}, {0x34a8, 0x20}, {0x34a9, 0x18}, {0x34f8, 0x5f},
	{0x34f9, 0x04}, {0x3632, 0x48}, {0x3633, 0x32}, {0x3637, 0x29},
	{0x3638, 0xc1}, {0x363b, 0x20}, {0x363d, 0x02}, {0x3670, 0x09},
	{0x3674, 0x88}, {0x3675, 0x88}, {0x3676, 0x88}, {0x367c, 0x40},
	{0x367d, 0x48}, {0x3690, 0x33}, {0x3691, 0x34}, {0x3692, 0x55},
	{0x3693, 0x4b}, {0x3694, 0x4f}, {0x3698, 0x85}, {0x3699, 0x8f},
	{0x369a, 0xa0}, {0x369b, 0xc3}, {0x36a2, 0x49}, {0x36a3, 0x4b},
	{0x36a4, 0x4f}, {0x36d0, 0x01}, {0x370f, 0x01}, {0x3722, 0x00},
	{0x3728, 0x10}, {0x37b0, 0x03}, {0x37b1, 0x03}, {0x37b2, 0x83},
	{0x37b3, 0x48}, {0x37b4, 0x4f}, {0x3901, 0x00}, {0x3902, 0xc5},
	{0x3904, 0x08}, {0x3905, 0x8d}, {0x3909, 0x00}, {0x391d, 0x04},
	{0x3926, 0x21}, {0x3929, 0x18}, {0x3933, 0x82}, {0x3934, 0x08},
	{0x3937, 0x5b}, {0x3939, 0x00}, {0x393a, 0x01}, {0x39dc, 0x02},
	{0x3c0f, 0x00}, {0x3e00, 0x01}, {0x3e01, 0x82}, {0x3e02, 0x00},
	{0x3e04, 0x18}, {0x3e05, 0x20}, {0x3e23, 0x00}, {0x3e24, 0xc8},
	{0x440e, 0x02}, {0x4509, 0x20}, {0x4800, 0x04}, {0x4816, 0x11},
	{0x5010, 0x10}, {0x5799, 0x06}, {0x57ad, 0x00}, {0x5ae0, 0xfe},
	{0x5ae1, 0x40}, {0x5ae2, 0x30}, {0x5ae3, 0x2a}, {0x5ae4, 0x24},
	{0x5ae5, 0x30}, {0x5ae6, 0x2a}, {0x5ae7, 0x24}, {0x5ae8, 0x3c},
	{0x5ae9, 0x30}, {0x5aea, 0x28}, {0x5aeb, 0x3c}, {0x5aec, 0x30},
	{0x5aed, 0x28}, {0x5aee, 0xfe}, {0x5aef, 0x40}, {0x5af4, 0x30},
	{0x5af5, 0x2a}, {0x5af6, 0x24}, {0x5af7, 0x30}, {0x5af8, 0x2a},
	{0x5af9, 0x24}, {0x5afa, 0x3c}, {0x5afb, 0x30}, {0x5afc, 0x28},
	{0x5afd, 0x3c}, {0x5afe, 0x30}, {0x5aff, 0x28}, {0x36e9, 0x44},
	{0x37f9, 0x44}, {0x0100, 0x01},
}

var regs2880x1620At20HDR = []RegVal{
	{0x0103, 0x01}, {0x0100, 0x00}, {0x36e9, 0x80}, {0x37f9, 0x80},
	{0x301f, 0x1c}, {0x320e, 0x13}, {0x320f, 0x56}, {0x3250, 0xff},
	{0x3251, 0x98}, {0x3253, 0x0c}, {0x325f, 0x20}, {0x3281, 0x01},
	{0x3301, 0x08}, {0x3304, 0x58}, {0x3306, 0xa0}, {0x3308, 0x14},
	{0x3309, 0x50}, {0x330a, 0x01}, {0x330b, 0x10}, {0x330d, 0x10},
	{0x331e, 0x49}, {0x331f, 0x41}, {0x3333, 0x10}, {0x335d, 0x60},
	{0x335e, 0x06}, {0x335f, 0x08}, {0x3364, 0x56}, {0x3366, 0x01},
	{0x337c, 0x02}, {0x337d, 0x0a}, {0x3390, 0x01}, {0x3391, 0x03},
	{0x3392, 0x07}, {0x3393, 0x08}, {0x3394, 0x08}, {0x3395, 0x08},
	{0x3396, 0x48}, {0x3397, 0x4b}, {0x3398, 0x4f}, {0x3399, 0x0a},
	{0x339a, 0x0a}, {0x339b, 0x10}, {0x339c, 0x22}, {0x33a2, 0x04},
	{0x33ad, 0x24}, {0x33ae, 0x38}, {0x33af, 0x38}, {0x33b1, 0x80},
	{0x33b2, 0x48}, {0x33b3, 0x20}, {0x349f, 0x02}, {0x34a6, 0x48},
	{0x34a7, 0x4b}, {0x34a8, 0x20}, {0x34a9, 0x18}, {0x34f8, 0x5f},
	{0x34f9, 0x04}, {0x3632, 0x48}, {0x3633, 0x32}, {0x3637, 0x29},
	{0x3638, 0xc1}, {0x363b, 0x20}, {0x363d, 0x02}, {0x3670, 0x09},
	{0x3674, 0x88}, {0x3675, 0x88}, {0x3676, 0x88}, {0x367c, 0x40},
	{0x367d, 0x48}, {0x3690, 0x33}, {0x3691, 0x34}, {0x3692, 0x55},
	{0x3693, 0x4b}, {0x3694, 0x4f}, {0x3698, 0x85}, {0x3699, 0x8f},
	{0x369a, 0xa0}, {0x369b, 0xc3}, {0x36a2, 0x49}, {0x36a3, 0x4b},
	{0x36a4, 0x4f}, {0x36d0, 0x01}, {0x370f, 0x01}, {0x3722, 0x00},
	{0x3728, 0x10}, {0x37b0, 0x03}, {0x37b1, 0x03}, {0x37b2, 0x83},
	{0x37b3, 0x48}, {0x37b4, 0x4f}, {0x3901, 0x00}, {0x3902, 0xc5},
	{0x3904, 0x08}, {0x3905, 0x8d}, {0x3909, 0x00}, {0x391d, 0x04},
	{0x3926, 0x21}, {0x3929, 0x18}, {0x3933, 0x82}, {0x3934, 0x08},
	{0x3937, 0x5b}, {0x3939, 0x00}, {0x393a, 0x01}, {0x39dc, 0x02},
	{0x3c0f, 0x00}, {0x3e00, 0x01}, {0x3e01, 0x82}, {0x3e02, 0x00},
	{0x3e04, 0x18}, {0x3e05, 0x20}, {0x3e23, 0x00}, {0x3e24, 0xc8},
	{0x440e, 0x02}, {0x4509, 0x20}, {0x4800, 0x04}, {0x4816, 0x11},
	{0x5010, 0x10}, {0x5799, 0x06}, {0x57ad, 0x00}, {0x5ae0, 0xfe},
	{0x5ae1, 0x40}, {0x5ae2, 0x30}, {0x5ae3, 0x2a}, {0x5ae4, 0x24},
	{0x5ae5, 0x30}, {0x5ae6, 0x2a}, {0x5ae7, 0x24}, {0x5ae8, 0x3c},
	{0x5ae9, 0x30}, {0x5aea, 0x28}, {0x5aeb, 0x3c}, {0x5aec, 0x30},
	{0x5aed, 0x28}, {0x5aee, 0xfe}, {0x5aef, 0x40}, {0x5af4, 0x30},
	{0x5af5, 0x2a}, {0x5af6, 0x24}, {0x5af7, 0x30}, {0x5af8, 0x2a},
	{0x5af9, 0x24}, {0x5afa, 0x3c}, {0x5afb, 0x30}, {0x5afc, 0x28},
	{0x5afd, 0x3c}, {0x5afe, 0x30}, {0x5aff, 0x28}, {0x36e9, 0x44},
	{0x37f9, 0x44}, {0x0100, 0x01},
}

var regs2880x1620At15HDR = []RegVal{
	{0x0103, 0x01}, {0x0100, 0x00}, {0x36e9, 0x80}, {0x37f9, 0x80},
	{0x301f, 0x1f}, {0x320e, 0x0c}, {0x320f, 0xe4}, {0x3250, 0xff},
	{0x3251, 0x98}, {0x3253, 0x0c}, {0x325f, 0x20}, {0x3281, 0x01},
	{0x3301, 0x08}, {0x3304, 0x50}, {0x3306, 0x78}, {0x3308, 0x14},
	{0x3309, 0x70}, {0x330a, 0x00}, {0x330b, 0xd8}, {0x330d, 0x10},
	{0x331e, 0x41}, {0x331f, 0x61}, {0x3333, 0x10}, {0x335d, 0x60},
	{0x335e, 0x06}, {0x335f, 0x08}, {0x3364, 0x56}, {0x3366, 0x01},
	{0x337c, 0x02}, {0x337d, 0x0a}, {0x3390, 0x01}, {0x3391, 0x03},
	{0x3392, 0x07}, {0x3393, 0x08}, {0x3394, 0x08}, {0x3395, 0x08},
	{0x3396, 0x40}, {0x3397, 0x48}, {0x3398, 0x4b}, {0x3399, 0x08},
	{0x339a, 0x08}, {0x339b, 0x08}, {0x339c, 0x1d}, {0x33a2, 0x04},
	{0x33ae, 0x30}, {0x33af, 0x50}, {0x33b1, 0x80}, {0x33b2, 0x48},
	{0x33b3, 0x30}, {0x349f, 0x02}, {0x34a6, 0x48}, {0x34a7, 0x4b},
	{0x34a8, 0x30}, {0x34a9, 0x18}, {0x34f8, 0x5f}, {0x34f9, 0x08},
	{0x3632, 0x48}, {0x3633, 0x32}, {0x3637, 0x29}, {0x3638, 0xc1},
	{0x363b, 0x20}, {0x363d, 0x02}, {0x3670, 0x09}, {0x3674, 0x8b},
	{0x3675, 0xc6}, {0x3676, 0x8b}, {0x367c, 0x40}, {0x367d, 0x48},
	{0x3690, 0x32}, {0x3691, 0x43}, {0x3692, 0x33}, {0x3693, 0x40},
	{0x3694, 0x4b}, {0x3698, 0x85}, {0x3699, 0x8f}, {0x369a, 0xa0},
	{0x369b, 0xc3}, {0x36a2, 0x49}, {0x36a3, 0x4b}, {0x36a4, 0x4f},
	{0x36d0, 0x01}, {0x36ec, 0x13}, {0x370f, 0x01}, {0x3722, 0x00},
	{0x3728, 0x10}, {0x37b0, 0x03}, {0x37b1, 0x03}, {0x37b2, 0x83},
	{0x37b3, 0x48}, {0x37b4, 0x49}, {0x37fb, 0x25}, {0x37fc, 0x01},
	{0x3901, 0x00}, {0x3902, 0xc5}, {0x3904, 0x08}, {0x3905, 0x8c},
	{0x3909, 0x00}, {0x391d, 0x04}, {0x391f, 0x44}, {0x3926, 0x21},
	{0x3929, 0x18}, {0x3933, 0x82}, {0x3934, 0x0a}, {0x3937, 0x5f},
	{0x3939, 0x00}, {0x393a, 0x00}, {0x39dc, 0x02}, {0x3c0f, 0x00},
	{0x3e00, 0x01}, {0x3e01, 0x82}, {0x3e02, 0x00}, {0x3e04, 0x18},
	{0x3e05, 0x20}, {0x3e23, 0x00}, {0x3e24, 0xc8}, {0x440e, 0x02},
	{0x4509, 0x20}, {0x4800, 0x04}, {0x4816, 0x11}, {0x4837, 0x28},
	{0x5010, 0x10}, {0x5799, 0x06}, {0x57ad, 0x00}, {0x5ae0, 0xfe},
	{0x5ae1, 0x40}, {0x5ae2, 0x30}, {0x5ae3, 0x2a}, {0x5ae4, 0x24},
	{0x5ae5, 0x30}, {0x5ae6, 0x2a}, {0x5ae7, 0x24}, {0x5ae8, 0x3c},
	{0x5ae9, 0x30}, {0x5aea, 0x28}, {0x5aeb, 0x3c}, {0x5aec, 0x30},
	{0x5aed, 0x28}, {0x5aee, 0xfe}, {0x5aef, 0x40}, {0x5af4, 0x30},
	{0x5af5, 0x2a}, {0x5af6, 0x24}, {0x5af7, 0x30}, {0x5af8, 0x2a},
	{0x5af9, 0x24}, {0x5afa, 0x3c}, {0x5afb, 0x30}, {0x5afc, 0x28},
	{0x5afd, 0x3c}, {0x5afe, 0x30}, {0x5aff, 0x28}, {0x36e9, 0x44},
	{0x37f9, 0x34}, {0x0100, 0x01},
}
